// SPDX-License-Identifier: MIT

package diagnostics

import (
	"math"

	"github.com/katalvlaran/hypergeom/angle"
	"github.com/katalvlaran/hypergeom/ratio"
)

// LargeRatioThreshold is the |r/κ| above which a report says
// large_ratio_stable. It is lower than ratio.OverflowThreshold: the label
// warns before the engine starts falling back.
const LargeRatioThreshold = 100.0

// Metrics validates (r, κ) and, when valid, evaluates the default engine
// and classifies the result. It never panics.
func Metrics(r, kappa float64) Report {
	return MetricsWith(ratio.Default, r, kappa)
}

// MetricsWith is Metrics against an explicit engine. A nil e selects
// ratio.Default.
//
// The regime and stability labels replay the engine's branch choice with
// its own degenerate band when e implements ratio.EpsilonReporter, and
// with ratio.DefaultEpsilon otherwise. The curvature label always uses
// ratio.DefaultEpsilon.
func MetricsWith(e ratio.Engine, r, kappa float64) Report {
	if e == nil {
		e = ratio.Default
	}

	ok, msg := ValidateParams(r, kappa)
	if !ok {
		return Report{
			R:                 r,
			Kappa:             kappa,
			ValidationMessage: msg,
			PiAOverPi:         ratio.EuclideanLimit,
			FullTurnDegrees:   angle.DegreesPerTurn,
			CurvatureType:     CurvatureEuclidean,
			Stability:         StabilityUnstable,
			Regime:            RegimeEpsilonFallback,
		}
	}

	q := e.PiAOverPi(r, kappa)
	eps := engineEpsilon(e)

	return Report{
		R:                 r,
		Kappa:             kappa,
		Valid:             true,
		ValidationMessage: msg,
		PiAOverPi:         q,
		FullTurnDegrees:   angle.NewConverter(e).FullTurnDegrees(r, kappa),
		CurvatureType:     classifyCurvature(kappa),
		Stability:         classifyStability(r, kappa, q, eps),
		Regime:            classifyRegime(r, kappa, eps),
	}
}

func engineEpsilon(e ratio.Engine) float64 {
	if er, ok := e.(ratio.EpsilonReporter); ok {
		return er.Epsilon()
	}

	return ratio.DefaultEpsilon
}

func classifyCurvature(kappa float64) CurvatureType {
	switch {
	case math.Abs(kappa) < ratio.DefaultEpsilon:
		return CurvatureEuclidean
	case kappa > 0:
		return CurvatureSpherical
	default:
		return CurvatureHyperbolic
	}
}

// classifyRegime replays the engine ladder with the report's own
// large-ratio threshold.
func classifyRegime(r, kappa, eps float64) Regime {
	switch ratio.Classify(r, kappa, eps) {
	case ratio.RegimeEpsilon:
		return RegimeEpsilonFallback
	case ratio.RegimeTaylor:
		return RegimeTaylorExpansion
	case ratio.RegimeOverflow:
		return RegimeLargeRatioStable
	}
	if math.Abs(r/kappa) > LargeRatioThreshold {
		return RegimeLargeRatioStable
	}

	return RegimeStandard
}

func classifyStability(r, kappa, q, eps float64) Stability {
	degenerate := math.Abs(r) < eps || math.Abs(kappa) < eps
	switch {
	case !isFinite(q):
		return StabilityUnstable
	case q == ratio.EuclideanLimit && !degenerate:
		return StabilityFallbackTriggered
	default:
		return StabilityStable
	}
}
