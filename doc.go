// Package hypergeom is a small numerical kernel for angle budgeting in
// curved workspaces: the adaptive-pi ratio π_a/π, the angle conversions
// built on it, an origin-relative hyperbolic distance, and diagnostics.
//
// 🚀 What is adaptive pi?
//
//	On a surface with curvature radius κ the circumference of a circle of
//	geodesic radius r is no longer 2πr. The ratio
//
//	    π_a/π = κ·sinh(r/κ) / r
//
//	tells how many Euclidean degrees one full "adaptive" revolution is
//	worth at radius r. Callers (sketch solvers, rotation tools) use it to
//	scale angle requests.
//
// ✨ Guarantees:
//
//   - Total – every function is defined for every float64 input
//   - Never NaN – degenerate or overflowing inputs fall back to the Euclidean limit 1.0
//   - Pure Go – no cgo, no global state, safe for concurrent use
//
// Under the hood, everything is organized under four subpackages:
//
//	ratio/         the π_a/π engine, Taylor/overflow ladder, float64 & big.Float strategies
//	angle/         full-turn degrees and adaptive-degree → radian conversion
//	geodesic/      Point3, hyperbolic law-of-cosines distance, MoveTowards, Constraint
//	diagnostics/   parameter validation and the metrics report
//
// The cmd/adaptivepi tool evaluates reports for a single (r, κ) pair or a
// YAML sweep.
//
//	go get github.com/katalvlaran/hypergeom
package hypergeom
