package prim

import "testing"

func TestPushPointOffset(t *testing.T) {
	np := NewArtwork().Node(ArrowName)
	layer := np.Templates[0].Layer
	ni := np.NewInstance().WithOrient(R180).WithAnchor(Pt(10, 5))

	var c PolyCollector
	b := NewBuilder(&c)
	b.SetInstance(&ni)
	b.PushPointOffset(Pt(1, 0), 0.5, 2)
	b.PushPoint(Pt(1, 0))
	b.PushPoly(Opened, layer, nil, nil)

	b.SetInstance(nil)
	b.PushPointOffset(Pt(1, 1), -1, -1)
	b.PushPoly(Opened, layer, nil, nil)

	if len(c.Polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(c.Polys))
	}
	// The offset is applied before the instance transform.
	diff(t, []Point{{8.5, 3}, {9, 5}}, c.Polys[0].Points)
	diff(t, []Point{{0, 0}}, c.Polys[1].Points)
}
