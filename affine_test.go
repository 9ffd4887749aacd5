package prim

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipX), Pt(-3, 4), epsilon)
	assertNear(t, p.Transform(Scale(2, 2).ThenTranslate(Vec(1, 1))), Pt(7, 9), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestOrientationExact(t *testing.T) {
	p := Pt(3, 1)
	f := func(o Orientation, want Point) {
		t.Helper()
		if got := p.Transform(o.Affine()); got != want {
			t.Errorf("%v: got %v, want %v", o, got, want)
		}
	}
	f(R0, Pt(3, 1))
	f(R90, Pt(-1, 3))
	f(R180, Pt(-3, -1))
	f(R270, Pt(1, -3))
	f(MX, Pt(-3, 1))
	f(MY, Pt(3, -1))
	f(Orientation{Quarter: 1, MirrorX: true}, Pt(-1, -3))
	f(Orientation{Quarter: -1}, Pt(1, -3))
}

func TestOrientationRoundTrip(t *testing.T) {
	for q := range 4 {
		for _, m := range []bool{false, true} {
			o := Orientation{Quarter: q, MirrorX: m}
			got, err := ParseOrientation(o.String())
			if err != nil {
				t.Fatal(err)
			}
			diff(t, o, got)
		}
	}
	if _, err := ParseOrientation("R45"); err == nil {
		t.Error("expected error for R45")
	}
}

func TestTransformRectBoundingBox(t *testing.T) {
	r := Rect{-2, -2, 2, 3}
	diff(t, Rect{-3, -2, 2, 2}, R90.Affine().TransformRectBoundingBox(r))
	diff(t, Rect{-2, -3, 2, 2}, R180.Affine().TransformRectBoundingBox(r))
	diff(t, Rect{8, -2, 12, 3}, Translate(Vec(10, 0)).TransformRectBoundingBox(r))
}
