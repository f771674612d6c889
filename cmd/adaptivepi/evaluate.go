// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypergeom/angle"
	"github.com/katalvlaran/hypergeom/diagnostics"
	"github.com/katalvlaran/hypergeom/ratio"
)

// Entry is one evaluated pair as written to stdout.
type Entry struct {
	diagnostics.Report `yaml:",inline"`
	RotateRadians      *float64 `yaml:"rotate_radians,omitempty"`
}

// engineFor picks the ratio strategy for a sweep.
func engineFor(s Sweep) ratio.Engine {
	if s.Precision > 0 {
		return ratio.NewBigFloatEngine(s.Precision)
	}

	return ratio.Default
}

// Evaluate computes one Entry per pair and logs anything that is not stable.
func Evaluate(s Sweep, logger *slog.Logger) []Entry {
	e := engineFor(s)
	conv := angle.NewConverter(e)

	entries := make([]Entry, 0, len(s.Radii)*len(s.Curvatures))
	counts := map[diagnostics.Stability]int{}
	for _, p := range s.Pairs() {
		rep := diagnostics.MetricsWith(e, p[0], p[1])
		entry := Entry{Report: rep}
		if s.RotateDegrees != nil && rep.Valid {
			rad := conv.RotateCmd(*s.RotateDegrees, p[0], p[1])
			entry.RotateRadians = &rad
		}
		entries = append(entries, entry)
		counts[rep.Stability]++

		switch {
		case !rep.Valid:
			logger.Warn("invalid parameters", "report", rep, "reason", rep.ValidationMessage)
		case rep.Stability != diagnostics.StabilityStable:
			logger.Warn("ratio fell back to the Euclidean limit", "report", rep)
		default:
			logger.Debug("evaluated", "report", rep)
		}
	}

	logger.Info("sweep evaluated",
		"pairs", len(entries),
		"stable", counts[diagnostics.StabilityStable],
		"fallback_triggered", counts[diagnostics.StabilityFallbackTriggered],
		"unstable", counts[diagnostics.StabilityUnstable],
		"precision", s.Precision,
	)

	return entries
}

// WriteEntries encodes entries as a YAML sequence.
func WriteEntries(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}

	return enc.Close()
}
