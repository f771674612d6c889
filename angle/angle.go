// SPDX-License-Identifier: MIT

package angle

import (
	"math"

	"github.com/katalvlaran/hypergeom/ratio"
)

// DegreesPerTurn is the Euclidean full turn.
const DegreesPerTurn = 360.0

// Converter performs angle conversions against a fixed ratio.Engine.
// The zero value uses ratio.Default.
type Converter struct {
	engine ratio.Engine
}

// NewConverter returns a Converter backed by e. A nil e selects ratio.Default.
func NewConverter(e ratio.Engine) Converter {
	return Converter{engine: e}
}

func (c Converter) piAOverPi(r, kappa float64) float64 {
	if c.engine == nil {
		return ratio.Default.PiAOverPi(r, kappa)
	}

	return c.engine.PiAOverPi(r, kappa)
}

// FullTurnDegrees returns 360·π_a/π: the Euclidean degrees spanned by one
// adaptive revolution at radius r. Always finite and > 0.
func (c Converter) FullTurnDegrees(r, kappa float64) float64 {
	return DegreesPerTurn * c.piAOverPi(r, kappa)
}

// RotateCmd converts deltaDegA adaptive degrees to Euclidean radians:
// deltaDegA / FullTurnDegrees(r, κ) · 2π. No wrapping into [0, 2π).
//
// The division is safe because FullTurnDegrees is strictly positive.
func (c Converter) RotateCmd(deltaDegA, r, kappa float64) float64 {
	frac := deltaDegA / c.FullTurnDegrees(r, kappa)

	return frac * 2 * math.Pi
}

var std Converter

// FullTurnDegrees is Converter.FullTurnDegrees on the default engine.
func FullTurnDegrees(r, kappa float64) float64 {
	return std.FullTurnDegrees(r, kappa)
}

// RotateCmd is Converter.RotateCmd on the default engine.
func RotateCmd(deltaDegA, r, kappa float64) float64 {
	return std.RotateCmd(deltaDegA, r, kappa)
}
