package prim

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEdgeCoordProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("fixed coordinates ignore the extent", prop.ForAll(
		func(off, extent float64) bool {
			return FromCenter(off).At(extent) == off
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(0, 1000),
	))
	properties.Property("unit multiplier resolves to the extent", prop.ForAll(
		func(extent float64) bool {
			return EdgeCoord{Multiplier: 1}.At(extent) == extent
		},
		gen.Float64Range(0, 1000),
	))
	properties.Property("edges are symmetric about the center", prop.ForAll(
		func(extent float64) bool {
			return LeftEdge.At(extent) == -RightEdge.At(extent)
		},
		gen.Float64Range(0, 1000),
	))
	properties.Property("relative resolution at nominal size equals a factor of one", prop.ForAll(
		func(mul, off, nominal float64) bool {
			e := EdgeCoord{Multiplier: mul, Offset: off}
			return e.Relative(nominal, nominal) == e.At(1)
		},
		gen.Float64Range(-4, 4),
		gen.Float64Range(-10, 10),
		gen.Float64Range(0.5, 100),
	))

	properties.TestingRun(t)
}

func TestEdgeCoordResolve(t *testing.T) {
	f := func(e EdgeCoord, extent, want float64) {
		t.Helper()
		if got := e.At(extent); got != want {
			t.Errorf("%v at %g: got %g, want %g", e, extent, got, want)
		}
	}
	f(FromCenter(5), 0, 5)
	f(FromCenter(5), 40, 5)
	f(EdgeCoord{Multiplier: 1}, 7, 7)
	f(LeftEdge, 4, -2)
	f(FromTop(1), 4, 3)
	f(FromRight(-0.5), 6, 2.5)

	if got := (EdgeCoord{Multiplier: -2}).Relative(8, 4); got != -4 {
		t.Errorf("relative: got %g, want -4", got)
	}
	if got := (EdgeCoord{Multiplier: -2, Offset: 1}).Relative(8, 0); got != -1 {
		t.Errorf("relative with zero nominal: got %g, want -1", got)
	}
}

func TestEdgeRect(t *testing.T) {
	diff(t, Rect{-2, -2, 2, 3}, transistorFullRect.At(Sz(4, 4)))
	diff(t, Rect{-4, -4, 4, 5}, transistorFullRect.At(Sz(8, 8)))
	diff(t, Pt(-1.5, 2), TP(LeftEdge, FromTop(0.5)).At(Sz(3, 3)))
}

func TestTemplateTransforms(t *testing.T) {
	l := &Layer{Name: "L"}
	orig := NewTemplate(l, Opened, TP(LeftEdge, BottomEdge), TP(LeftEdge, TopEdge), CP(1, 0))
	before := orig.clone()

	scaled := orig.Scaled(3)
	diff(t, []Point{{-6, -6}, {-6, 6}, {3, 0}}, scaled.Resolve(Sz(4, 4)))

	ext := orig.Extended(1, 2)
	diff(t, []Point{{-2, -3}, {-2, 4}, {1, 0}}, ext.Resolve(Sz(4, 4)))

	// The canonical template is left alone.
	if !orig.Equal(before) {
		t.Error("Scaled or Extended modified the original template")
	}
}

func TestBoxTemplate(t *testing.T) {
	l := &Layer{Name: "L"}
	box := NewBoxTemplate(l, Filled, TP(RightEdge, TopEdge), TP(LeftEdge, BottomEdge))
	diff(t, []Point{{-1, -2}, {1, -2}, {1, 2}, {-1, 2}}, box.Resolve(Sz(2, 4)))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for box with three points")
		}
	}()
	bad := box
	bad.Points = append(bad.Points, CP(0, 0))
	bad.Resolve(Sz(2, 4))
}
