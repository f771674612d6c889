package geodesic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergeom/geodesic"
)

// TestDistance_OriginEndpoint covers the degenerate origin branch.
func TestDistance_OriginEndpoint(t *testing.T) {
	o := geodesic.Point3{}
	p := geodesic.Point3{X: 3, Y: 4}

	assert.Equal(t, 1.0, geodesic.Distance(o, geodesic.Point3{X: 1}, 1.0))
	for _, k := range []float64{1, 0.1, -2, 0, math.Inf(1)} {
		assert.Equal(t, 5.0, geodesic.Distance(o, p, k), "κ=%v", k)
		assert.Equal(t, 5.0, geodesic.Distance(p, o, k), "κ=%v", k)
	}
	assert.Equal(t, 0.0, geodesic.Distance(o, o, 1))
}

// TestDistance_LawOfCosines compares against the textbook formula.
func TestDistance_LawOfCosines(t *testing.T) {
	// θ = 90°, r1 = 1, r2 = 2
	d := geodesic.Distance(geodesic.Point3{X: 1}, geodesic.Point3{Y: 2}, 1)
	assert.InDelta(t, 2.4444289498610536, d, 1e-12)

	// θ = 60°
	p2 := geodesic.Point3{X: 2 * math.Cos(math.Pi/3), Y: 2 * math.Sin(math.Pi/3)}
	d = geodesic.Distance(geodesic.Point3{X: 1}, p2, 1)
	assert.InDelta(t, 1.9754344018723016, d, 1e-9)

	// κ scales both the argument and the result.
	d = geodesic.Distance(geodesic.Point3{Z: 1}, geodesic.Point3{X: 2}, 2)
	assert.InDelta(t, 2.3036600226912647, d, 1e-12)
}

// TestDistance_Radial checks collinear points differ by their radii.
func TestDistance_Radial(t *testing.T) {
	d := geodesic.Distance(geodesic.Point3{X: 1}, geodesic.Point3{X: 3}, 1)
	assert.InDelta(t, 2.0, d, 1e-12)

	d = geodesic.Distance(geodesic.Point3{X: 1000}, geodesic.Point3{X: 1001}, 1)
	assert.InDelta(t, 1.0, d, 1e-9, "far collinear points stay finite")
}

// TestDistance_Symmetry verifies d(p1,p2) == d(p2,p1) bit for bit.
func TestDistance_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kappas := []float64{1, 0.3, -1.5, 25, 1e-12}
	for i := 0; i < 500; i++ {
		p1 := geodesic.Point3{X: rng.NormFloat64() * 3, Y: rng.NormFloat64() * 3, Z: rng.NormFloat64() * 3}
		p2 := geodesic.Point3{X: rng.NormFloat64() * 3, Y: rng.NormFloat64() * 3, Z: rng.NormFloat64() * 3}
		k := kappas[i%len(kappas)]

		d12 := geodesic.Distance(p1, p2, k)
		d21 := geodesic.Distance(p2, p1, k)
		require.Equal(t, d12, d21, "p1=%v p2=%v κ=%v", p1, p2, k)
		require.GreaterOrEqual(t, d12, 0.0)
		require.False(t, math.IsNaN(d12) || math.IsInf(d12, 0))
	}
}

// TestDistance_SamePoint is exactly zero, on and off the axes.
func TestDistance_SamePoint(t *testing.T) {
	points := []geodesic.Point3{{X: 1}, {X: 1, Y: 1, Z: 1}, {X: -0.3, Y: 2, Z: 0.7}, {X: 5, Y: 5}, {X: 1e-9, Y: -1e-9, Z: 3e-9}}
	for _, p := range points {
		for _, k := range []float64{1, -0.5, 1e-3, 1e9} {
			assert.Equal(t, 0.0, geodesic.Distance(p, p, k), "p=%v κ=%v", p, k)
		}
	}
}

// TestDistance_CloseCollinear resolves radial separations far below acosh round-off.
func TestDistance_CloseCollinear(t *testing.T) {
	p1, p2 := geodesic.Point3{X: 1 - 1e-10}, geodesic.Point3{X: 1}
	want := p2.X - p1.X

	d := geodesic.Distance(p1, p2, 1)
	require.Greater(t, d, 0.0)
	assert.InEpsilon(t, want, d, 1e-5, "radial distance is |r1 - r2|")

	next := geodesic.MoveTowards(p1, p2, 1, 1)
	assert.Equal(t, p2, next)
	mid := geodesic.MoveTowards(p1, p2, 1, want/2)
	assert.Greater(t, mid.X, p1.X)
	assert.Less(t, mid.X, p2.X)
}

// TestDistance_CloseOffAxis compares a short hop with the local metric
// ds² = dr² + κ²·sinh²(r/κ)·dφ².
func TestDistance_CloseOffAxis(t *testing.T) {
	const h = 1e-7
	p1, p2 := geodesic.Point3{X: 5, Y: 5}, geodesic.Point3{X: 5, Y: 5 + h}

	r := 5 * math.Sqrt2
	dr := h / math.Sqrt2
	dphi := (h / math.Sqrt2) / r
	want := math.Hypot(dr, math.Sinh(r)*dphi)

	assert.InEpsilon(t, want, geodesic.Distance(p1, p2, 1), 1e-4)
}

// TestDistance_LargeCurvature tends to the Euclidean distance as |κ| grows.
func TestDistance_LargeCurvature(t *testing.T) {
	p1, p2 := geodesic.Point3{X: 1}, geodesic.Point3{Y: 1}
	for _, k := range []float64{1e3, 1e6, 1e8, 1e9, 1e12, 1e200, -1e200, math.MaxFloat64} {
		assert.InEpsilon(t, math.Sqrt2, geodesic.Distance(p1, p2, k), 1e-6, "κ=%v", k)
	}

	c := geodesic.NewConstraint(geodesic.Point3{Y: 1}, 1e9)
	p := geodesic.Point3{X: 1}
	next := c.Update(p)
	assert.NotEqual(t, p, next)
	assert.InDelta(t, c.Distance(p)-geodesic.DefaultStep, c.Distance(next), 1e-9)
}

// TestDistance_NegativeCurvature ensures the sign of κ does not flip the distance.
func TestDistance_NegativeCurvature(t *testing.T) {
	p1, p2 := geodesic.Point3{X: 1, Y: 0.5}, geodesic.Point3{Y: -2, Z: 1}
	pos := geodesic.Distance(p1, p2, 1.3)
	neg := geodesic.Distance(p1, p2, -1.3)
	assert.Equal(t, pos, neg)
	assert.Greater(t, neg, 0.0)
}

// TestDistance_FlatFallback covers κ → 0 and κ → ∞.
func TestDistance_FlatFallback(t *testing.T) {
	p1, p2 := geodesic.Point3{X: 1}, geodesic.Point3{Y: 1}
	want := math.Sqrt2

	assert.InDelta(t, want, geodesic.Distance(p1, p2, 0), 1e-15)
	assert.InDelta(t, want, geodesic.Distance(p1, p2, 1e-12), 1e-15)
	assert.InDelta(t, want, geodesic.Distance(p1, p2, math.Inf(1)), 1e-15)
	assert.InDelta(t, want, geodesic.Distance(p1, p2, math.NaN()), 1e-15)
}

// TestDistance_Overflow uses the log-domain branch when cosh overflows.
func TestDistance_Overflow(t *testing.T) {
	d := geodesic.Distance(geodesic.Point3{X: 1000}, geodesic.Point3{Y: 1000}, 1)
	assert.InDelta(t, 2000-math.Ln2, d, 1e-9)

	d = geodesic.Distance(geodesic.Point3{X: 1000}, geodesic.Point3{X: -1000}, 1)
	assert.InDelta(t, 2000.0, d, 1e-9, "antipodal: r1 + r2")
}
