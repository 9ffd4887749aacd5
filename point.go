package prim

import (
	"fmt"
	"math"
)

// Point is a location in the coordinate space of a cell. Node-relative points
// are measured from the center of the instance.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// OutlineBreak separates disjoint segments of an instance outline. Use
// [Point.IsBreak] to test for it, NaN never compares equal.
var OutlineBreak = Point{X: math.NaN(), Y: math.NaN()}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.A*pt.X + aff.C*pt.Y + aff.E,
		Y: aff.B*pt.X + aff.D*pt.Y + aff.F,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Manhattan returns the L1 distance between two points.
func (pt Point) Manhattan(o Point) float64 {
	return math.Abs(pt.X-o.X) + math.Abs(pt.Y-o.Y)
}

// IsBreak reports whether pt is an outline break marker.
func (pt Point) IsBreak() bool {
	return pt.IsNaN()
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
