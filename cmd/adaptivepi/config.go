// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypergeom/ratio"
)

var (
	// ErrEmptySweep is returned when a sweep has no radius or no curvature.
	ErrEmptySweep = errors.New("adaptivepi: sweep needs at least one radius and one curvature")

	// ErrBadPrecision is returned for a digit count outside [0, ratio.MaxDigits].
	ErrBadPrecision = errors.New("adaptivepi: precision out of range")
)

// Sweep is the grid of (r, κ) pairs to evaluate.
//
//	radii: [0.1, 0.5, 1]
//	curvatures: [1, -1]
//	rotate_degrees: 90   # optional: also convert this adaptive angle
//	precision: 60        # optional: 1..ratio.MaxDigits selects the big.Float engine
type Sweep struct {
	Radii         []float64 `yaml:"radii"`
	Curvatures    []float64 `yaml:"curvatures"`
	RotateDegrees *float64  `yaml:"rotate_degrees,omitempty"`
	Precision     int       `yaml:"precision,omitempty"`
}

// LoadSweep decodes and validates a YAML sweep. Unknown keys are rejected.
func LoadSweep(r io.Reader) (Sweep, error) {
	var s Sweep
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Sweep{}, fmt.Errorf("adaptivepi: decode sweep: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Sweep{}, err
	}

	return s, nil
}

// Validate checks the sweep shape. Individual (r, κ) values are not
// checked here: diagnostics reports them per pair.
func (s Sweep) Validate() error {
	if len(s.Radii) == 0 || len(s.Curvatures) == 0 {
		return ErrEmptySweep
	}
	if s.Precision < 0 || s.Precision > ratio.MaxDigits {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrBadPrecision, s.Precision, ratio.MaxDigits)
	}

	return nil
}

// Pairs expands the grid in radius-major order.
func (s Sweep) Pairs() [][2]float64 {
	out := make([][2]float64, 0, len(s.Radii)*len(s.Curvatures))
	for _, r := range s.Radii {
		for _, k := range s.Curvatures {
			out = append(out, [2]float64{r, k})
		}
	}

	return out
}
