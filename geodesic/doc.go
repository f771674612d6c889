// Package geodesic measures distances in a hyperbolic workspace of
// curvature radius κ and drags points toward targets.
//
// 🚀 Model
//
//	Points are plain Euclidean triples. Each point is read in polar form
//	about the origin: radius rᵢ = |pᵢ| and the angle θ between the two
//	position vectors. Distance applies the hyperbolic law of cosines
//
//	    cosh(d/κ) = cosh(r₁/κ)·cosh(r₂/κ) − sinh(r₁/κ)·sinh(r₂/κ)·cosθ
//
//	which is exact when one endpoint is the origin and an origin-relative
//	approximation otherwise.
//
// ⚠️ Caveats (kept on purpose)
//
//   - If either point is the origin, Distance returns the other point's
//     Euclidean norm.
//   - MoveTowards measures with the hyperbolic metric but moves along the
//     straight Euclidean segment; it is a soft-constraint step, not a
//     geodesic walk.
//
// ⚙️ Usage:
//
//	c := geodesic.NewConstraint(geodesic.Point3{X: 1}, 1.0)
//	p := geodesic.Point3{}
//	for i := 0; i < 100 && c.Distance(p) > 0; i++ {
//	    p = c.Update(p) // lands on the target once within one step
//	}
//
// All functions are pure; Constraint is immutable and safe to share.
package geodesic
