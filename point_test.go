package prim

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Midpoint(Pt(3, 6)), Pt(2, 4))
	diff(t, Vec(1, 0).Perp(), Vec(0, 1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.Manhattan(p4); d != 7 {
		t.Errorf("got manhattan distance %v, want 7", d)
	}
}

func TestOutlineBreak(t *testing.T) {
	if !OutlineBreak.IsBreak() {
		t.Error("OutlineBreak is not a break")
	}
	if !Pt(0, math.NaN()).IsBreak() {
		t.Error("point with NaN coordinate is not a break")
	}
	if Pt(1, 2).IsBreak() {
		t.Error("ordinary point is a break")
	}
}

func TestAngles(t *testing.T) {
	f := func(a, want int) {
		t.Helper()
		if got := NormAngle(a); got != want {
			t.Errorf("NormAngle(%d) = %d, want %d", a, got, want)
		}
	}
	f(0, 0)
	f(3600, 0)
	f(-900, 2700)
	f(7350, 150)

	for _, a := range []int{0, 900, 1800, 2700, -900} {
		if got := AngleOf(Dir(a)); got != NormAngle(a) {
			t.Errorf("AngleOf(Dir(%d)) = %d", a, got)
		}
	}
	diff(t, Vec(0, -1), Dir(2700))
	if got := AngleOf(Vec(1, 1)); got != 450 {
		t.Errorf("AngleOf(1, 1) = %d, want 450", got)
	}
}
