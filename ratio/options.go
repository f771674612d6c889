// SPDX-License-Identifier: MIT

package ratio

import (
	"fmt"
	"math"
)

// Numeric policy of the engine.
const (
	// DefaultEpsilon is the degenerate band: |r| or |κ| below it returns the
	// Euclidean limit 1.0.
	DefaultEpsilon = 1e-10

	// TaylorThreshold is the |r/κ| below which sinh is replaced by its
	// fifth-order Taylor polynomial.
	TaylorThreshold = 1e-2

	// OverflowThreshold is the |r/κ| above which the engine returns 1.0
	// instead of evaluating sinh. sinh(710) already overflows float64.
	OverflowThreshold = 700.0

	// EuclideanLimit is the value returned by every fallback branch.
	EuclideanLimit = 1.0
)

const panicEpsilonInvalid = "ratio: WithEpsilon: eps must be finite, non-negative"

// Option mutates engine options. Constructors panic only on nonsensical
// values (programmer error), never on r or κ.
type Option func(*Options)

// Options holds the resolved numeric policy.
type Options struct {
	eps float64
}

// Epsilon returns the degenerate band in effect.
func (o Options) Epsilon() float64 { return o.eps }

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the degenerate band.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("%s (got %v)", panicEpsilonInvalid, eps))
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
