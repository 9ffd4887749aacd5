package prim

import "math"

const (
	// EllipseSegments is the number of points on a closed ellipse, not
	// counting the closing duplicate. Open arcs use the same angular density.
	EllipseSegments = 30
	// SplineSamples is the number of points generated per spline segment.
	SplineSamples = 20
)

// EllipsePoints approximates an ellipse of the given widths centered on
// center. Angles are in radians.
//
// If start and sweep are both zero, the result is the closed ellipse:
// EllipseSegments points followed by a copy of the first. Otherwise it is the
// open arc from start to start+sweep, with at least three points. The first
// and last points of an arc lie exactly at the requested angles.
//
// Points are produced by rotating a unit vector incrementally rather than by
// evaluating sine and cosine for every point.
func EllipsePoints(center Point, widthX, widthY, start, sweep float64) []Point {
	rx := widthX / 2
	ry := widthY / 2
	at := func(cos, sin float64) Point {
		return Point{X: center.X + rx*cos, Y: center.Y + ry*sin}
	}

	if start == 0 && sweep == 0 {
		pts := make([]Point, EllipseSegments+1)
		sinStep, cosStep := math.Sincos(2 * math.Pi / EllipseSegments)
		cos, sin := 1.0, 0.0
		for i := range EllipseSegments {
			pts[i] = at(cos, sin)
			cos, sin = cos*cosStep-sin*sinStep, sin*cosStep+cos*sinStep
		}
		pts[EllipseSegments] = pts[0]
		return pts
	}

	n := int(math.Ceil(math.Abs(sweep) * EllipseSegments / (2 * math.Pi)))
	n = max(n, 2)
	pts := make([]Point, n+1)
	sinStep, cosStep := math.Sincos(sweep / float64(n))
	sin, cos := math.Sincos(start)
	for i := range n {
		pts[i] = at(cos, sin)
		cos, sin = cos*cosStep-sin*sinStep, sin*cosStep+cos*sinStep
	}
	sin, cos = math.Sincos(start + sweep)
	pts[n] = at(cos, sin)
	return pts
}

// SplineCurve returns a cardinal spline through the control points, which are
// offsets from center. Each of the n-1 segments contributes SplineSamples
// points and the last control point is appended exactly, for a total of
// (n-1)·SplineSamples+1 points.
//
// Virtual control points before the first and after the last are
// extrapolated linearly, giving the curve defined end tangents.
func SplineCurve(center Point, controls []Point) []Point {
	n := len(controls)
	switch n {
	case 0:
		return nil
	case 1:
		return []Point{center.Translate(Vec2(controls[0]))}
	}

	ctl := func(i int) Point {
		switch {
		case i < 0:
			return Pt(2*controls[0].X-controls[1].X, 2*controls[0].Y-controls[1].Y)
		case i >= n:
			return Pt(2*controls[n-1].X-controls[n-2].X, 2*controls[n-1].Y-controls[n-2].Y)
		default:
			return controls[i]
		}
	}

	out := make([]Point, 0, (n-1)*SplineSamples+1)
	for i := range n - 1 {
		p0, p1, p2, p3 := ctl(i-1), ctl(i), ctl(i+1), ctl(i+2)
		for j := range SplineSamples {
			t := float64(j) / SplineSamples
			out = append(out, center.Translate(Vec2(catmullRom(p0, p1, p2, p3, t))))
		}
	}
	return append(out, center.Translate(Vec2(controls[n-1])))
}

func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b +
			(c-a)*t +
			(2*a-5*b+4*c-d)*t2 +
			(3*b-a-3*c+d)*t3)
	}
	return Point{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}
