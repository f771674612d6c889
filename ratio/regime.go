// SPDX-License-Identifier: MIT

package ratio

import "math"

// Regime names the branch of the decision ladder taken for an input.
type Regime int

const (
	// RegimeEpsilon – |r| or |κ| below the epsilon; Euclidean limit returned.
	RegimeEpsilon Regime = iota

	// RegimeTaylor – |r/κ| < TaylorThreshold; polynomial sinh.
	RegimeTaylor

	// RegimeOverflow – |r/κ| > OverflowThreshold (or NaN); Euclidean limit returned.
	RegimeOverflow

	// RegimeDirect – math.Sinh evaluated directly.
	RegimeDirect
)

// String returns a short lower-case label.
func (g Regime) String() string {
	switch g {
	case RegimeEpsilon:
		return "epsilon"
	case RegimeTaylor:
		return "taylor"
	case RegimeOverflow:
		return "overflow"
	case RegimeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Classify reports which branch PiAOverPi takes for (r, kappa) under eps.
// It mirrors the ladder exactly, so Classify(r, k, eps) == RegimeOverflow
// implies PiAOverPi(r, k, WithEpsilon(eps)) == EuclideanLimit.
func Classify(r, kappa, eps float64) Regime {
	if math.Abs(r) < eps || math.Abs(kappa) < eps {
		return RegimeEpsilon
	}
	ax := math.Abs(r / kappa)
	switch {
	case ax < TaylorThreshold:
		return RegimeTaylor
	case ax > OverflowThreshold, math.IsNaN(ax):
		return RegimeOverflow
	default:
		return RegimeDirect
	}
}
