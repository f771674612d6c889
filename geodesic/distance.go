// SPDX-License-Identifier: MIT

package geodesic

import "math"

// FlatEpsilon is the |κ| below which the workspace is treated as flat and
// Distance returns the Euclidean distance.
const FlatEpsilon = 1e-10

// logSinhCutoff is the t above which ln sinh t is taken as t − ln 2 + log1p(−e⁻²ᵗ).
const logSinhCutoff = 20.0

// Distance returns the origin-relative hyperbolic distance between p1 and
// p2 for curvature radius kappa. The result is symmetric, ≥ 0, and zero
// only for p1 == p2.
//
// Branches:
//   - |p1| == 0 → |p2|, |p2| == 0 → |p1| (origin endpoint).
//   - |κ| < FlatEpsilon, or a non-finite intermediate (κ = ±Inf, NaN) →
//     Euclidean |p1 − p2|.
//   - otherwise |κ|·acosh(c) with c from the law of cosines.
//
// With a = r₁/|κ|, b = r₂/|κ| and θ the angle between p1 and p2,
//
//	c − 1 = 2·sinh²((a−b)/2)·cos²(θ/2) + 2·sinh²((a+b)/2)·sin²(θ/2)
//
// and acosh(1 + δ) = 2·asinh(√(δ/2)), so the distance is
// 2|κ|·asinh(hypot(sinh((a−b)/2)·cos(θ/2), sinh((a+b)/2)·sin(θ/2))).
// Nothing is rounded against 1, so close points and large |κ| keep full
// precision, and the result tends to |p1 − p2| as |κ| grows. θ comes from
// atan2(|p1×p2|, p1·p2). When sinh overflows the asinh is taken in the
// log domain.
//
// Complexity: O(1).
func Distance(p1, p2 Point3, kappa float64) float64 {
	r1, r2 := p1.Norm(), p2.Norm()
	if r1 == 0 {
		return r2
	}
	if r2 == 0 {
		return r1
	}

	k := math.Abs(kappa)
	if !(k >= FlatEpsilon) {
		return p1.Sub(p2).Norm()
	}

	theta := math.Atan2(p1.Cross(p2).Norm(), p1.Dot(p2))
	wr, wt := math.Cos(theta/2), math.Sin(theta/2)
	u, v := (r1-r2)/k/2, (r1+r2)/k/2

	h := math.Hypot(weightedSinh(u, wr), weightedSinh(v, wt))
	var d float64
	if math.IsInf(h, 1) {
		// asinh(h) = ln(2h) + O(h⁻²).
		d = k * (2 * (math.Ln2 + logHypotSinh(u, wr, v, wt)))
	} else {
		d = k * (2 * math.Asinh(h))
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return p1.Sub(p2).Norm()
	}
	if d == 0 && p1 != p2 {
		// (r₁ ± r₂)/|κ| underflowed: flat limit.
		return p1.Sub(p2).Norm()
	}

	return d
}

// weightedSinh returns w·sinh t, with 0 for w == 0 even if sinh t overflows.
func weightedSinh(t, w float64) float64 {
	if w == 0 {
		return 0
	}

	return w * math.Sinh(t)
}

// logHypotSinh returns ln hypot(w₁·sinh t₁, w₂·sinh t₂) without forming
// either product.
func logHypotSinh(t1, w1, t2, w2 float64) float64 {
	x := logSinh(t1) + math.Log(math.Abs(w1))
	y := logSinh(t2) + math.Log(math.Abs(w2))

	return logAddExp(2*x, 2*y) / 2
}

// logSinh returns ln sinh|t|, −Inf for t == 0.
func logSinh(t float64) float64 {
	t = math.Abs(t)
	if t > logSinhCutoff {
		return t - math.Ln2 + math.Log1p(-math.Exp(-2*t))
	}

	return math.Log(math.Sinh(t))
}

// logAddExp returns ln(eˣ + eʸ). At most one argument may be −Inf.
func logAddExp(x, y float64) float64 {
	if x < y {
		x, y = y, x
	}
	if math.IsInf(y, -1) {
		return x
	}

	return x + math.Log1p(math.Exp(y-x))
}
