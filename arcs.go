package prim

import "fmt"

// ArcShape selects how an arc prototype is drawn.
type ArcShape uint8

const (
	// ArcFilled is a filled quadrilateral along the centerline, or a line if
	// the arc has no width.
	ArcFilled ArcShape = iota
	// ArcDoubleLine is two parallel strokes either side of the centerline.
	ArcDoubleLine
	// ArcZigZag bends the line at its midpoint, for springs and resistors.
	ArcZigZag
	// ArcPlusEnds marks both ends with a cross.
	ArcPlusEnds
)

var arcShapeNames = [...]string{"filled", "double", "zigzag", "plus"}

func (s ArcShape) String() string {
	if int(s) < len(arcShapeNames) {
		return arcShapeNames[s]
	}
	return fmt.Sprintf("ArcShape(%d)", s)
}

// ParseArcShape is the inverse of [ArcShape.String].
func ParseArcShape(name string) (ArcShape, error) {
	for i, n := range arcShapeNames {
		if n == name {
			return ArcShape(i), nil
		}
	}
	return 0, fmt.Errorf("prim: unknown arc shape %q", name)
}

const (
	// arrowAngle is the half-angle of an arrowhead chevron.
	arrowAngle = 300
	// arrowLength is the length of each side of a chevron.
	arrowLength = 1
	// zigZagAmplitude is how far the midpoint of a zig-zag arc is displaced.
	zigZagAmplitude = 1
	// plusSize is half the length of each stroke of an end cross.
	plusSize = 0.5
)

// ArcLayer is one layer of an arc prototype.
type ArcLayer struct {
	Layer *Layer `validate:"required"`
	// Extend widens the arc on this layer by this much on each side.
	Extend float64 `validate:"gte=0"`
	Style  Style
}

// ArcProto is the prototype of a wire or connector.
type ArcProto struct {
	Name   string      `validate:"required"`
	Tech   *Technology `validate:"-"`
	Layers []ArcLayer  `validate:"required,min=1,dive"`
	// Directional arcs get a head arrow by default.
	Directional bool
	// AngleIncrement, in tenths of a degree, is the granularity of the arc's
	// direction when FixedAngle is set.
	AngleIncrement int `validate:"gte=0,lte=1800"`
	FixedAngle     bool
	// Wipable arcs hide the pins they end on.
	Wipable bool
	Shape   ArcShape
	// DoubleOffset is the distance of each stroke of an ArcDoubleLine arc
	// from the centerline.
	DoubleOffset float64 `validate:"gte=0"`
	DefaultWidth float64 `validate:"gte=0"`
}

func (ap *ArcProto) String() string {
	if ap.Tech != nil {
		return ap.Tech.Name + ":" + ap.Name
	}
	return ap.Name
}

// SnapAngle rounds a to the prototype's angle increment if the prototype has
// a fixed angle.
func (ap *ArcProto) SnapAngle(a int) int {
	if !ap.FixedAngle || ap.AngleIncrement <= 0 {
		return NormAngle(a)
	}
	inc := ap.AngleIncrement
	a = NormAngle(a)
	return NormAngle((a + inc/2) / inc * inc)
}

// ArcInst is one placed arc. Angle is the direction from tail to head in
// tenths of a degree; it is kept separately from the end points so that
// zero-length arcs still have a direction.
type ArcInst struct {
	Proto     *ArcProto
	Tail      Point
	Head      Point
	Width     float64
	HeadArrow bool
	TailArrow bool
	BodyArrow bool
	Angle     int
}

// NewArcInst returns an arc of ap from tail to head with the prototype's
// default width and arrows.
func NewArcInst(ap *ArcProto, tail, head Point) ArcInst {
	return ArcInst{
		Proto:     ap,
		Tail:      tail,
		Head:      head,
		Width:     ap.DefaultWidth,
		HeadArrow: ap.Directional,
		Angle:     ap.SnapAngle(AngleOf(head.Sub(tail))),
	}
}

// Arc emits the shape of ai. Arcs are drawn in cell coordinates.
func (b *Builder) Arc(ai *ArcInst) {
	b.SetInstance(nil)
	ap := ai.Proto
	for i, al := range ap.Layers {
		if b.SkipLayer(al.Layer) {
			continue
		}
		w := max(ai.Width+2*al.Extend, 0)
		tail, head := ai.Tail, ai.Head
		switch ap.Shape {
		case ArcDoubleLine:
			b.doubleLine(ai, al, w)
		case ArcZigZag:
			b.zigZag(tail, head, ai.Angle, al)
		case ArcPlusEnds:
			tail = b.plusEnd(tail, ai.Angle, al.Layer)
			head = b.plusEnd(head, ai.Angle+HalfCircle, al.Layer)
			b.centerline(tail, head, ai.Angle, w, al)
		default:
			b.centerline(tail, head, ai.Angle, w, al)
		}
		if i != 0 {
			continue
		}
		if ai.HeadArrow {
			b.arrowhead(ai.Head, ai.Angle, al.Layer)
		}
		if ai.TailArrow {
			b.arrowhead(ai.Tail, ai.Angle+HalfCircle, al.Layer)
		}
		if ai.BodyArrow {
			b.arrowhead(ai.Tail.Midpoint(ai.Head), ai.Angle, al.Layer)
		}
	}
}

// centerline draws the default arc shape.
func (b *Builder) centerline(tail, head Point, angle int, w float64, al ArcLayer) {
	if w == 0 {
		style := al.Style
		if style == Filled || style == Closed {
			style = Opened
		}
		b.PushPoint(tail)
		b.PushPoint(head)
		b.PushPoly(style, al.Layer, nil, nil)
		return
	}
	p := Dir(angle + RightAngle).Mul(w / 2)
	b.PushPoint(tail.Translate(p))
	b.PushPoint(head.Translate(p))
	b.PushPoint(head.Translate(p.Negate()))
	b.PushPoint(tail.Translate(p.Negate()))
	b.PushPoly(al.Style, al.Layer, nil, nil)
}

// arrowhead draws a chevron with its point at pt, pointing along angle.
func (b *Builder) arrowhead(pt Point, angle int, l *Layer) {
	back := angle + HalfCircle
	b.PushPoint(pt)
	b.PushPoint(pt.Translate(Dir(back + arrowAngle).Mul(arrowLength)))
	b.PushPoint(pt)
	b.PushPoint(pt.Translate(Dir(back - arrowAngle).Mul(arrowLength)))
	b.PushPoly(Vectors, l, nil, nil)
}

// doubleLine draws two strokes offset from the centerline. A head arrow
// shortens the strokes so that they end at the base of the chevron.
func (b *Builder) doubleLine(ai *ArcInst, al ArcLayer, w float64) {
	d := ai.Proto.DoubleOffset + w/2
	p := Dir(ai.Angle + RightAngle).Mul(d)
	head := ai.Head
	if ai.HeadArrow {
		head = head.Translate(Dir(ai.Angle).Mul(-arrowLength * CosTenths(arrowAngle)))
	}
	for _, off := range [2]Vec2{p, p.Negate()} {
		b.PushPoint(ai.Tail.Translate(off))
		b.PushPoint(head.Translate(off))
		b.PushPoly(Opened, al.Layer, nil, nil)
	}
}

// zigZag draws the arc bent sideways at its midpoint.
func (b *Builder) zigZag(tail, head Point, angle int, al ArcLayer) {
	mid := tail.Midpoint(head).Translate(Dir(angle + RightAngle).Mul(zigZagAmplitude))
	b.PushPoint(tail)
	b.PushPoint(mid)
	b.PushPoint(head)
	b.PushPoly(Opened, al.Layer, nil, nil)
}

// plusEnd draws a cross at end, aligned with inward, the direction from end
// into the arc, and returns where the rest of the arc should start.
func (b *Builder) plusEnd(end Point, inward int, l *Layer) Point {
	along := Dir(inward).Mul(plusSize)
	across := Dir(inward + RightAngle).Mul(plusSize)
	center := end.Translate(along)
	b.PushPoint(center.Translate(along))
	b.PushPoint(center.Translate(along.Negate()))
	b.PushPoint(center.Translate(across))
	b.PushPoint(center.Translate(across.Negate()))
	b.PushPoly(Vectors, l, nil, nil)
	return center.Translate(along)
}

// ArcShapeOf returns the polygons of ai.
func ArcShapeOf(ai *ArcInst) []Poly {
	var c PolyCollector
	NewBuilder(&c).Arc(ai)
	return c.Polys
}

// ArcBounds returns the bounds of the shape of ai.
func ArcBounds(ai *ArcInst) Rect {
	acc := NewBoundsAccumulator()
	NewBuilder(acc).Arc(ai)
	if r, ok := acc.Bounds(); ok {
		return r
	}
	return NewRectFromPoints(ai.Tail, ai.Head)
}
