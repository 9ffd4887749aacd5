package prim

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect is the identity for [Rect.Union] and [Rect.UnionPoint]: it
// contains nothing and reports IsEmpty.
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given size centered on center.
func NewRectFromCenter(center Point, size Size) Rect {
	return Rect{
		X0: center.X - size.Width/2,
		Y0: center.Y - size.Height/2,
		X1: center.X + size.Width/2,
		Y1: center.Y + size.Height/2,
	}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// IsEmpty reports whether r has no points, which is the case for [EmptyRect].
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Corners returns the four corners of r, counterclockwise from (X0, Y0).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union of a rectangle with a point.
//
// The result is the smallest rectangle that contains both the rectangle and the point.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}
