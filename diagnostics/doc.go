// Package diagnostics validates (r, κ) pairs and explains how the π_a/π
// engine treats them.
//
// Two complementary contracts coexist:
//
//	ratio.PiAOverPi never fails – nonsense inputs silently become 1.0.
//	Validate / Metrics say when a configuration is meaningless.
//
// Metrics bundles the ratio, the full-turn degrees, the curvature type, the
// numerical regime the engine ran in and a stability indicator into a
// Report. Reports carry yaml/json tags and implement slog.LogValuer.
package diagnostics
