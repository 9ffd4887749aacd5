package prim

import "math"

// BoundsAccumulator is a [Sink] that tracks the bounding box of everything
// pushed into it. Circles and circular arcs contribute their true extent, not
// just their defining points.
type BoundsAccumulator struct {
	r Rect
	n int
	// Skip, if set, suppresses layers.
	Skip func(*Layer) bool
}

// NewBoundsAccumulator returns an empty accumulator.
func NewBoundsAccumulator() *BoundsAccumulator {
	return &BoundsAccumulator{r: EmptyRect}
}

func (acc *BoundsAccumulator) SkipLayer(l *Layer) bool {
	return acc.Skip != nil && acc.Skip(l)
}

func (acc *BoundsAccumulator) AddPoly(p Poly) {
	if acc.n == 0 {
		acc.r = EmptyRect
	}
	acc.n++
	pts := p.Points
	switch {
	case (p.Style == Disc || p.Style == Circle || p.Style == ThickCircle) && len(pts) >= 2:
		r := pts[0].Distance(pts[1])
		acc.r = acc.r.Union(Rect{pts[0].X - r, pts[0].Y - r, pts[0].X + r, pts[0].Y + r})
	case p.Style.IsArc() && len(pts) >= 3:
		acc.r = acc.r.Union(arcBounds(pts[0], pts[1], pts[2]))
	default:
		for _, pt := range pts {
			acc.r = acc.r.UnionPoint(pt)
		}
	}
}

// Bounds returns the accumulated box. ok is false if nothing with any points
// was added.
func (acc *BoundsAccumulator) Bounds() (r Rect, ok bool) {
	if acc.n == 0 || acc.r.IsEmpty() {
		return Rect{}, false
	}
	return acc.r, true
}

// arcBounds returns the bounds of the counterclockwise circular arc around
// center from tail to head.
func arcBounds(center, tail, head Point) Rect {
	r := NewRectFromPoints(tail, head)
	radius := center.Distance(tail)
	a0 := math.Atan2(tail.Y-center.Y, tail.X-center.X)
	a1 := math.Atan2(head.Y-center.Y, head.X-center.X)
	sweep := a1 - a0
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	for q := range 4 {
		ca := float64(q) * math.Pi / 2
		d := ca - a0
		for d < 0 {
			d += 2 * math.Pi
		}
		if d <= sweep {
			r = r.UnionPoint(center.Translate(Dir(q * RightAngle).Mul(radius)))
		}
	}
	return r
}

// FastBounds returns the bounds of ni from its prototype's full rectangle,
// without generating any shape.
func FastBounds(ni *Instance) Rect {
	r := ni.Proto.FullRect.At(ni.Size)
	return ni.Transform().TransformRectBoundingBox(r)
}

// SlowBounds returns the bounds of the shape ni actually produces. An
// instance that produces nothing falls back to [FastBounds].
func SlowBounds(ni *Instance) Rect {
	acc := NewBoundsAccumulator()
	NewBuilder(acc).Node(ni)
	if r, ok := acc.Bounds(); ok {
		return r
	}
	return FastBounds(ni)
}

// Bounds returns the bounds of ni, generating its shape only when that shape
// depends on instance data.
func Bounds(ni *Instance) Rect {
	if shaperOf(ni.Proto.Strategy).dataDependent(ni) {
		return SlowBounds(ni)
	}
	return FastBounds(ni)
}
