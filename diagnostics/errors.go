// SPDX-License-Identifier: MIT

package diagnostics

import "errors"

var (
	// ErrNonFinite is returned when r or κ is NaN or ±Inf.
	ErrNonFinite = errors.New("diagnostics: parameters must be finite")

	// ErrNearSingular is returned when κ has collapsed to zero while r is
	// non-trivial; the ratio would silently report the Euclidean limit.
	ErrNearSingular = errors.New("diagnostics: near-singular configuration: curvature vanishes for a non-trivial radius")
)
