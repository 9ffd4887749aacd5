package prim

import "fmt"

// EdgeCoord is a parametric coordinate along one axis of a prototype. It
// resolves to Offset + Multiplier×extent, where extent is the width of the
// instance for horizontal coordinates and its height for vertical ones.
//
// A multiplier of 0 is a fixed distance from the center; ±0.5 tracks an edge.
type EdgeCoord struct {
	Multiplier float64
	Offset     float64
}

// Edge constructors for the common cases.
func FromCenter(off float64) EdgeCoord { return EdgeCoord{Multiplier: 0, Offset: off} }
func FromLeft(off float64) EdgeCoord   { return EdgeCoord{Multiplier: -0.5, Offset: off} }
func FromRight(off float64) EdgeCoord  { return EdgeCoord{Multiplier: 0.5, Offset: off} }
func FromBottom(off float64) EdgeCoord { return EdgeCoord{Multiplier: -0.5, Offset: off} }
func FromTop(off float64) EdgeCoord    { return EdgeCoord{Multiplier: 0.5, Offset: off} }

var (
	LeftEdge   = FromLeft(0)
	RightEdge  = FromRight(0)
	BottomEdge = FromBottom(0)
	TopEdge    = FromTop(0)
	Center     = FromCenter(0)
)

// At resolves the coordinate against an absolute extent.
func (e EdgeCoord) At(extent float64) float64 {
	return e.Offset + e.Multiplier*extent
}

// Relative resolves the coordinate against the dimensionless factor
// current/nominal instead of an absolute extent. Ports that must move in
// proportion to a stretched prototype use this form. A zero nominal extent
// resolves as a factor of 1.
func (e EdgeCoord) Relative(current, nominal float64) float64 {
	if nominal == 0 {
		return e.At(1)
	}
	return e.At(current / nominal)
}

// Scaled returns the coordinate scaled by f about the center.
func (e EdgeCoord) Scaled(f float64) EdgeCoord {
	return EdgeCoord{Multiplier: e.Multiplier * f, Offset: e.Offset * f}
}

// Shifted returns the coordinate moved by d.
func (e EdgeCoord) Shifted(d float64) EdgeCoord {
	return EdgeCoord{Multiplier: e.Multiplier, Offset: e.Offset + d}
}

func (e EdgeCoord) String() string {
	if e.Multiplier == 0 {
		return fmt.Sprintf("%g", e.Offset)
	}
	return fmt.Sprintf("%g%+g·ext", e.Offset, e.Multiplier)
}

// TechPoint is one vertex of a shape template in prototype-relative space.
type TechPoint struct {
	X EdgeCoord
	Y EdgeCoord
}

// TP is shorthand for a TechPoint.
func TP(x, y EdgeCoord) TechPoint {
	return TechPoint{X: x, Y: y}
}

// CP returns the TechPoint at a fixed offset from the center.
func CP(x, y float64) TechPoint {
	return TechPoint{X: FromCenter(x), Y: FromCenter(y)}
}

// At resolves the point against an instance size.
func (tp TechPoint) At(sz Size) Point {
	return Point{X: tp.X.At(sz.Width), Y: tp.Y.At(sz.Height)}
}

// EdgeRect is a rectangle whose sides are edge coordinates.
type EdgeRect struct {
	Left   EdgeCoord
	Bottom EdgeCoord
	Right  EdgeCoord
	Top    EdgeCoord
}

// FullEdges is the rectangle tracking all four edges of the instance.
var FullEdges = EdgeRect{Left: LeftEdge, Bottom: BottomEdge, Right: RightEdge, Top: TopEdge}

// At resolves the rectangle against an instance size.
func (r EdgeRect) At(sz Size) Rect {
	return Rect{
		X0: r.Left.At(sz.Width),
		Y0: r.Bottom.At(sz.Height),
		X1: r.Right.At(sz.Width),
		Y1: r.Top.At(sz.Height),
	}.Abs()
}
