package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSnapAngle(t *testing.T) {
	ap := &ArcProto{Name: "snap", AngleIncrement: 450, FixedAngle: true}
	tests := []struct{ in, want int }{
		{0, 0},
		{1000, 900},
		{1200, 1350},
		{3500, 0},
		{-100, 0},
		{-900, 2700},
	}
	for _, tt := range tests {
		if got := ap.SnapAngle(tt.in); got != tt.want {
			t.Errorf("SnapAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	free := &ArcProto{Name: "free", AngleIncrement: 450}
	diff(t, 1000, free.SnapAngle(1000))
	diff(t, 3500, free.SnapAngle(-100))
}

func TestWireArc(t *testing.T) {
	sch := NewSchematics()

	wire := NewArcInst(sch.Arc(WireArcName), Pt(0, 0), Pt(4, 0))
	polys := ArcShapeOf(&wire)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	diff(t, Opened, polys[0].Style)
	diff(t, []Point{{0, 0}, {4, 0}}, polys[0].Points)
	diff(t, Rect{0, 0, 4, 0}, ArcBounds(&wire))

	bus := NewArcInst(sch.Arc(BusArcName), Pt(0, 0), Pt(4, 0))
	polys = ArcShapeOf(&bus)
	diff(t, Filled, polys[0].Style)
	diff(t, []Point{{0, 0.25}, {4, 0.25}, {4, -0.25}, {0, -0.25}}, polys[0].Points)
	diff(t, Rect{0, -0.25, 4, 0.25}, ArcBounds(&bus))

	vertical := NewArcInst(sch.Arc(BusArcName), Pt(1, 1), Pt(1, 5))
	diff(t, RightAngle, vertical.Angle)
	diff(t, Rect{0.75, 1, 1.25, 5}, ArcBounds(&vertical))
}

func TestArrowheads(t *testing.T) {
	art := NewArtwork()
	ai := NewArcInst(art.Arc("Solid"), Pt(0, 0), Pt(4, 0))
	ai.HeadArrow = true
	ai.TailArrow = true
	polys := ArcShapeOf(&ai)
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	c := math.Sqrt(3) / 2
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vectors, polys[1].Style)
	diff(t, []Point{{4, 0}, {4 - c, -0.5}, {4, 0}, {4 - c, 0.5}}, polys[1].Points, approx)
	diff(t, []Point{{0, 0}, {c, 0.5}, {0, 0}, {c, -0.5}}, polys[2].Points, approx)

	ai = NewArcInst(art.Arc("Solid"), Pt(0, 0), Pt(4, 0))
	ai.BodyArrow = true
	polys = ArcShapeOf(&ai)
	diff(t, Pt(2, 0), polys[1].Points[0])
}

func TestDirectionalArc(t *testing.T) {
	l := &Layer{Name: "L"}
	ap := &ArcProto{
		Name:        "dir",
		Layers:      []ArcLayer{{Layer: l, Extend: 0.5, Style: Filled}, {Layer: l, Style: Opened}},
		Directional: true,
	}
	ai := NewArcInst(ap, Pt(0, 0), Pt(0, 4))
	if !ai.HeadArrow {
		t.Fatal("directional arc has no head arrow")
	}
	polys := ArcShapeOf(&ai)
	// Arrowheads are drawn once, on the first layer.
	diff(t, []Style{Filled, Vectors, Opened}, []Style{polys[0].Style, polys[1].Style, polys[2].Style})
	diff(t, []Point{{-0.5, 0}, {-0.5, 4}, {0.5, 4}, {0.5, 0}}, polys[0].Points)
}

func TestDoubleArc(t *testing.T) {
	ap := NewArtwork().Arc("Double")
	ai := NewArcInst(ap, Pt(0, 0), Pt(4, 0))
	polys := ArcShapeOf(&ai)
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	diff(t, []Point{{0, 0.25}, {4, 0.25}}, polys[0].Points)
	diff(t, []Point{{0, -0.25}, {4, -0.25}}, polys[1].Points)

	ai.HeadArrow = true
	polys = ArcShapeOf(&ai)
	head := 4 - math.Sqrt(3)/2
	diff(t, head, polys[0].Points[1].X, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Vectors, polys[2].Style)
}

func TestZigZagArc(t *testing.T) {
	ai := NewArcInst(NewArtwork().Arc("Spring"), Pt(0, 0), Pt(4, 0))
	polys := ArcShapeOf(&ai)
	diff(t, []Point{{0, 0}, {2, 1}, {4, 0}}, polys[0].Points)
	diff(t, Rect{0, 0, 4, 1}, ArcBounds(&ai))
}

func TestPlusEndsArc(t *testing.T) {
	ai := NewArcInst(NewArtwork().Arc("Marked"), Pt(0, 0), Pt(4, 0))
	polys := ArcShapeOf(&ai)
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	diff(t, []Point{{1, 0}, {0, 0}, {0.5, 0.5}, {0.5, -0.5}}, polys[0].Points)
	diff(t, []Point{{3, 0}, {4, 0}, {3.5, -0.5}, {3.5, 0.5}}, polys[1].Points)
	diff(t, []Point{{1, 0}, {3, 0}}, polys[2].Points)
}

func TestArcShapeNames(t *testing.T) {
	for s := ArcFilled; s <= ArcPlusEnds; s++ {
		got, err := ParseArcShape(s.String())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, s, got)
	}
	if _, err := ParseArcShape("wavy"); err == nil {
		t.Error("parsed unknown shape")
	}
}
