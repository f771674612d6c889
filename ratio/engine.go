// SPDX-License-Identifier: MIT

package ratio

// Engine computes π_a/π. Implementations must honour the same totality
// contract as PiAOverPi: finite, strictly positive, never panicking.
type Engine interface {
	PiAOverPi(r, kappa float64) float64
}

// EpsilonReporter is implemented by engines that expose their degenerate
// band, so callers can replay the engine's branch choice with Classify.
type EpsilonReporter interface {
	Epsilon() float64
}

// Float64Engine is the default double-precision strategy.
//
// The zero value uses a degenerate band of 0; build it with
// NewFloat64Engine to get DefaultEpsilon.
type Float64Engine struct {
	Eps float64
}

// NewFloat64Engine resolves opts over the defaults.
func NewFloat64Engine(opts ...Option) Float64Engine {
	o := gatherOptions(opts...)

	return Float64Engine{Eps: o.eps}
}

// PiAOverPi implements Engine.
func (e Float64Engine) PiAOverPi(r, kappa float64) float64 {
	return piAOverPi(r, kappa, e.Eps)
}

// Epsilon returns the degenerate band.
func (e Float64Engine) Epsilon() float64 { return e.Eps }

// Default is the engine used by the package-level helpers of dependent
// packages (angle, diagnostics).
var Default Engine = Float64Engine{Eps: DefaultEpsilon}

var (
	_ Engine          = Float64Engine{}
	_ Engine          = BigFloatEngine{}
	_ EpsilonReporter = Float64Engine{}
	_ EpsilonReporter = BigFloatEngine{}
)
