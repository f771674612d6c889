// SPDX-License-Identifier: MIT

package ratio

import "math"

// PiAOverPi returns π_a/π = κ·sinh(r/κ)/r for geodesic radius r and
// curvature radius kappa.
//
// The result is always finite and strictly positive. Degenerate inputs
// (|r| or |κ| below the epsilon), overflow-prone inputs (|r/κ| above
// OverflowThreshold), NaN and ±Inf all yield EuclideanLimit.
//
// Example:
//
//	q := PiAOverPi(1.0, 1.0) // sinh(1) ≈ 1.1752012
//
// Complexity: O(1).
func PiAOverPi(r, kappa float64, opts ...Option) float64 {
	o := gatherOptions(opts...)

	return piAOverPi(r, kappa, o.eps)
}

// piAOverPi is the option-free kernel shared by PiAOverPi and Float64Engine.
func piAOverPi(r, kappa, eps float64) float64 {
	if math.Abs(r) < eps || math.Abs(kappa) < eps {
		return EuclideanLimit
	}

	x := r / kappa
	ax := math.Abs(x)

	var s float64
	switch {
	case ax < TaylorThreshold:
		s = sinhTaylor(x)
	case ax > OverflowThreshold:
		return EuclideanLimit
	default:
		s = math.Sinh(x)
		// NaN x falls through both comparisons above.
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return EuclideanLimit
		}
	}

	q := (kappa * s) / r
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return EuclideanLimit
	}

	return q
}

// sinhTaylor evaluates x·(1 + x²/6 + x⁴/120). Accurate to float64 rounding
// for |x| < TaylorThreshold, where the dropped x⁷/5040 term is below 2e-16·|x|.
func sinhTaylor(x float64) float64 {
	x2 := x * x

	return x * (1 + x2*(1.0/6+x2/120))
}
