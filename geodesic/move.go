// SPDX-License-Identifier: MIT

package geodesic

// DefaultStep is the step length used by Constraint.Update.
const DefaultStep = 0.1

// MoveTowards moves p toward target by step, measured with Distance.
//
// p is returned unchanged when step is not positive (or NaN) and when the
// distance is zero. Otherwise frac = min(step/dist, 1) and the result is
// the Euclidean interpolation p + frac·(target − p); frac == 1 returns
// target exactly.
//
// Complexity: O(1).
func MoveTowards(p, target Point3, kappa, step float64) Point3 {
	if !(step > 0) {
		return p
	}
	dist := Distance(p, target, kappa)
	if !(dist > 0) {
		return p
	}

	frac := step / dist
	if frac >= 1 {
		return target
	}

	return p.Add(target.Sub(p).Scale(frac))
}

// Constraint pulls points toward a fixed target in a workspace of
// curvature radius κ. It holds no mutable state: callers own the point and
// the iteration loop.
type Constraint struct {
	target Point3
	kappa  float64
}

// NewConstraint returns a Constraint toward target.
func NewConstraint(target Point3, kappa float64) Constraint {
	return Constraint{target: target, kappa: kappa}
}

// Target returns the attraction point.
func (c Constraint) Target() Point3 { return c.target }

// Kappa returns the curvature radius.
func (c Constraint) Kappa() float64 { return c.kappa }

// Update performs one MoveTowards step of DefaultStep.
func (c Constraint) Update(p Point3) Point3 {
	return c.UpdateStep(p, DefaultStep)
}

// UpdateStep performs one MoveTowards step of the given length.
func (c Constraint) UpdateStep(p Point3, step float64) Point3 {
	return MoveTowards(p, c.target, c.kappa, step)
}

// Distance returns the distance from p to the target.
func (c Constraint) Distance(p Point3) float64 {
	return Distance(p, c.target, c.kappa)
}
