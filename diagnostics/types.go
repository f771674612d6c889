// SPDX-License-Identifier: MIT

package diagnostics

import "log/slog"

// CurvatureType classifies the sign of κ.
type CurvatureType string

const (
	CurvatureEuclidean  CurvatureType = "euclidean"
	CurvatureSpherical  CurvatureType = "spherical"
	CurvatureHyperbolic CurvatureType = "hyperbolic"
)

// Regime names the branch of the ratio ladder, as reported to callers.
type Regime string

const (
	RegimeEpsilonFallback  Regime = "epsilon_fallback"
	RegimeTaylorExpansion  Regime = "taylor_expansion"
	RegimeLargeRatioStable Regime = "large_ratio_stable"
	RegimeStandard         Regime = "standard"
)

// Stability tells whether the ratio is trustworthy.
type Stability string

const (
	// StabilityStable – regular evaluation, or a genuinely flat input.
	StabilityStable Stability = "stable"

	// StabilityFallbackTriggered – the ratio is exactly 1.0 although neither
	// r nor κ is degenerate.
	StabilityFallbackTriggered Stability = "fallback_triggered"

	// StabilityUnstable – the ratio is non-finite, or the parameters are invalid.
	StabilityUnstable Stability = "unstable"
)

// Report is produced fresh by Metrics; it has no lifecycle of its own.
type Report struct {
	R                 float64       `json:"r" yaml:"r"`
	Kappa             float64       `json:"kappa" yaml:"kappa"`
	Valid             bool          `json:"valid" yaml:"valid"`
	ValidationMessage string        `json:"validation_message" yaml:"validation_message"`
	PiAOverPi         float64       `json:"pi_a_over_pi" yaml:"pi_a_over_pi"`
	FullTurnDegrees   float64       `json:"full_turn_degrees" yaml:"full_turn_degrees"`
	CurvatureType     CurvatureType `json:"curvature_type" yaml:"curvature_type"`
	Stability         Stability     `json:"stability_indicator" yaml:"stability_indicator"`
	Regime            Regime        `json:"numerical_regime" yaml:"numerical_regime"`
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("r", r.R),
		slog.Float64("kappa", r.Kappa),
		slog.Bool("valid", r.Valid),
		slog.Float64("pi_a_over_pi", r.PiAOverPi),
		slog.Float64("full_turn_degrees", r.FullTurnDegrees),
		slog.String("curvature_type", string(r.CurvatureType)),
		slog.String("numerical_regime", string(r.Regime)),
		slog.String("stability_indicator", string(r.Stability)),
	)
}
