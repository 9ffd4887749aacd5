package prim

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEllipseClosed(t *testing.T) {
	c := Pt(3, -1)
	pts := EllipsePoints(c, 4, 4, 0, 0)
	if len(pts) != EllipseSegments+1 {
		t.Fatalf("got %d points, want %d", len(pts), EllipseSegments+1)
	}
	if pts[0] != pts[EllipseSegments] {
		t.Errorf("ellipse not closed: %v != %v", pts[0], pts[EllipseSegments])
	}
	for i, pt := range pts {
		if d := pt.Distance(c); math.Abs(d-2) > 1e-9 {
			t.Errorf("point %d at distance %g from center, want 2", i, d)
		}
	}
}

func TestEllipseHalfSweep(t *testing.T) {
	pts := EllipsePoints(Point{}, 6, 2, 0, math.Pi)
	if len(pts) < 3 {
		t.Fatalf("got %d points, want at least 3", len(pts))
	}
	diff(t, Pt(3, 0), pts[0])
	last := pts[len(pts)-1]
	_, sin := math.Sincos(math.Pi)
	diff(t, Pt(3*math.Cos(math.Pi), sin), last)

	prev := -1.0
	for i, pt := range pts {
		// Undo the aspect ratio to get the parametric angle.
		a := math.Atan2(pt.Y, pt.X/3)
		if i == len(pts)-1 {
			a = math.Pi
		}
		if a < prev-1e-12 {
			t.Errorf("angle decreases at point %d: %g after %g", i, a, prev)
		}
		prev = a
	}
}

func TestEllipseShortArc(t *testing.T) {
	// Even a tiny sweep has a middle point.
	if n := len(EllipsePoints(Point{}, 2, 2, 1, 0.01)); n < 3 {
		t.Errorf("got %d points, want at least 3", n)
	}
}

func TestSplineCurve(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("length and exact end", prop.ForAll(
		func(coords []float64) bool {
			n := len(coords) / 2
			if n < 2 {
				return true
			}
			ctrl := make([]Point, n)
			for i := range ctrl {
				ctrl[i] = Pt(coords[2*i], coords[2*i+1])
			}
			pts := SplineCurve(Point{}, ctrl)
			return len(pts) == (n-1)*SplineSamples+1 &&
				pts[len(pts)-1] == ctrl[n-1] &&
				pts[0] == ctrl[0]
		},
		gen.SliceOfN(12, gen.Float64Range(-50, 50)),
	))

	properties.TestingRun(t)

	ctrl := []Point{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
	pts := SplineCurve(Pt(10, 10), ctrl)
	if len(pts) != 61 {
		t.Fatalf("got %d points, want 61", len(pts))
	}
	diff(t, Pt(14, 10), pts[60])
	// The curve passes through every control point.
	for i, c := range ctrl {
		assertNear(t, pts[i*SplineSamples], c.Translate(Vec(10, 10)), 1e-9)
	}
}
