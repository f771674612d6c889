// SPDX-License-Identifier: MIT

package diagnostics

import "math"

const (
	// SingularCurvatureTol is the |κ| below which curvature counts as collapsed.
	SingularCurvatureTol = 1e-15

	// TrivialRadiusTol is the |r| above which a radius counts as non-trivial.
	TrivialRadiusTol = 1e-10

	// ValidMessage is the message paired with a successful validation.
	ValidMessage = "Parameters valid"
)

// Validate checks (r, κ) in a fixed order: finiteness, then singularity.
// It returns ErrNonFinite, ErrNearSingular or nil.
func Validate(r, kappa float64) error {
	if !isFinite(r) || !isFinite(kappa) {
		return ErrNonFinite
	}
	if math.Abs(kappa) < SingularCurvatureTol && math.Abs(r) > TrivialRadiusTol {
		return ErrNearSingular
	}

	return nil
}

// ValidateParams is Validate in (ok, message) form.
func ValidateParams(r, kappa float64) (bool, string) {
	if err := Validate(r, kappa); err != nil {
		return false, err.Error()
	}

	return true, ValidMessage
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
