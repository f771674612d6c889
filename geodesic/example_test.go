package geodesic_test

import (
	"fmt"

	"github.com/katalvlaran/hypergeom/geodesic"
)

// ExampleDistance measures from the origin and between two off-origin points.
func ExampleDistance() {
	fmt.Printf("%.4f\n", geodesic.Distance(geodesic.Point3{}, geodesic.Point3{X: 1}, 1.0))
	fmt.Printf("%.4f\n", geodesic.Distance(geodesic.Point3{X: 1}, geodesic.Point3{Y: 2}, 1.0))
	// Output:
	// 1.0000
	// 2.4444
}

// ExampleConstraint drags a point onto the target one step at a time.
func ExampleConstraint() {
	c := geodesic.NewConstraint(geodesic.Point3{X: 1}, 1.0)
	p := geodesic.Point3{}
	p = c.UpdateStep(p, 0.5)
	fmt.Println(p)
	p = c.UpdateStep(p, 0.75) // overshoots, so it lands on the target
	fmt.Println(p)
	// Output:
	// {0.5 0 0}
	// {1 0 0}
}
