package prim

import (
	"fmt"
	"slices"
)

// Poly is one resolved polygon, in cell coordinates.
type Poly struct {
	Style    Style
	Layer    *Layer
	Points   []Point
	Text     string
	TextSize float64
	// Graphics overrides the layer's appearance when not nil.
	Graphics *Graphics
	// Port is the port the polygon belongs to, if any.
	Port *PrimitivePort
}

// Bounds returns the bounding box of the polygon's points. Circular styles
// are handled by [BoundsAccumulator], not here.
func (p Poly) Bounds() Rect {
	r := EmptyRect
	for _, pt := range p.Points {
		r = r.UnionPoint(pt)
	}
	return r
}

// Sink receives the polygons a [Builder] produces.
type Sink interface {
	AddPoly(p Poly)
}

// LayerSkipper is an optional interface implemented by sinks that are not
// interested in every layer.
type LayerSkipper interface {
	SkipLayer(l *Layer) bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	wipePins  bool
	overrides bool
}

func defaultBuilderOptions() builderOptions {
	return builderOptions{
		wipePins:  false,
		overrides: true,
	}
}

// WithWipePins makes the builder suppress pins that their arcs fully cover.
func WithWipePins(on bool) BuilderOption {
	return func(o *builderOptions) {
		o.wipePins = on
	}
}

// WithGraphicsOverride controls whether per-instance color and pattern
// overrides are honored.
func WithGraphicsOverride(on bool) BuilderOption {
	return func(o *builderOptions) {
		o.overrides = on
	}
}

// Builder resolves templates into polygons and hands them to a [Sink].
//
// Points are pushed in node-relative coordinates and mapped to cell
// coordinates through the current instance's orientation and anchor. A
// Builder carries the pending point list and must not be shared between
// goroutines; use one per query.
type Builder struct {
	sink     Sink
	opts     builderOptions
	ni       *Instance
	aff      Affine
	mirrored bool
	points   []Point
	text     string
	textSize float64
}

// NewBuilder returns a builder writing into sink.
func NewBuilder(sink Sink, opts ...BuilderOption) *Builder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{sink: sink, opts: o, aff: Identity}
}

// SetInstance sets the instance whose transform subsequent points go
// through. A nil instance selects the identity transform.
func (b *Builder) SetInstance(ni *Instance) {
	b.ni = ni
	b.points = b.points[:0]
	if ni == nil {
		b.aff = Identity
		b.mirrored = false
		return
	}
	b.aff = ni.Transform()
	b.mirrored = ni.Orient.Mirrored()
}

// PushPoint appends a node-relative point to the pending polygon.
func (b *Builder) PushPoint(pt Point) {
	b.points = append(b.points, pt.Transform(b.aff))
}

// PushPointOffset appends ref displaced by (dx, dy).
func (b *Builder) PushPointOffset(ref Point, dx, dy float64) {
	b.PushPoint(Point{X: ref.X + dx, Y: ref.Y + dy})
}

// SetText sets the message of the next polygon.
func (b *Builder) SetText(msg string, size float64) {
	b.text = msg
	b.textSize = size
}

// PushPoly emits the pending points as a polygon and clears them.
func (b *Builder) PushPoly(style Style, layer *Layer, g *Graphics, pp *PrimitivePort) {
	pts := slices.Clone(b.points)
	b.points = b.points[:0]
	if style.IsArc() && b.mirrored && len(pts) >= 3 {
		// Mirroring reverses the sense of rotation; keep arcs counterclockwise.
		pts[1], pts[2] = pts[2], pts[1]
	}
	b.sink.AddPoly(Poly{
		Style:    style,
		Layer:    layer,
		Points:   pts,
		Text:     b.text,
		TextSize: b.textSize,
		Graphics: g,
		Port:     pp,
	})
	b.text = ""
	b.textSize = 0
}

// PushOutlineSegment appends count points of pts starting at start. With
// dedupeAdjacent, a point equal to its predecessor is dropped; with
// dedupeClosing, a last point equal to the first is dropped.
func (b *Builder) PushOutlineSegment(pts []Point, start, count int, dedupeAdjacent, dedupeClosing bool) {
	seg := pts[start : start+count]
	if dedupeClosing && len(seg) > 1 && seg[len(seg)-1] == seg[0] {
		seg = seg[:len(seg)-1]
	}
	for i, pt := range seg {
		if dedupeAdjacent && i > 0 && pt == seg[i-1] {
			continue
		}
		b.PushPoint(pt)
	}
}

// SkipLayer reports whether the sink wants polygons on l suppressed.
func (b *Builder) SkipLayer(l *Layer) bool {
	if s, ok := b.sink.(LayerSkipper); ok {
		return s.SkipLayer(l)
	}
	return false
}

// IsWipePins reports whether pins covered by their arcs are suppressed.
func (b *Builder) IsWipePins() bool {
	return b.opts.wipePins
}

// IsWiped reports whether ni is a pin covered by its arcs.
func (b *Builder) IsWiped(ni *Instance) bool {
	return ni.IsWiped()
}

// GenShapeOfNode resolves templates against ni, in order, and emits one
// polygon per template whose layer is not skipped. The order of templates is
// the painter's order.
//
// ni must be an instance of np; anything else is a caller bug and panics.
func (b *Builder) GenShapeOfNode(ni *Instance, np *PrimitiveNode, templates []ShapeTemplate, g *Graphics) {
	if ni.Proto != np {
		panic(fmt.Sprintf("prim: instance of %v passed as %v", ni.Proto, np))
	}
	for _, t := range templates {
		if b.SkipLayer(t.Layer) {
			continue
		}
		for _, pt := range t.Resolve(ni.Size) {
			b.PushPoint(pt)
		}
		var pp *PrimitivePort
		if t.PortIndex >= 0 && t.PortIndex < len(np.Ports) {
			pp = np.Ports[t.PortIndex]
		}
		msg := t.Message
		if msg != "" && t.Style.IsText() && ni.Text != "" {
			msg = ni.Text
		}
		b.SetText(msg, t.TextSize)
		b.PushPoly(t.Style, t.Layer, g, pp)
	}
}

// Node emits the shape of ni using its prototype's strategy.
func (b *Builder) Node(ni *Instance) {
	np := ni.Proto
	b.SetInstance(ni)
	if np.Flags.Has(WipeOn1or2) && b.IsWipePins() && b.IsWiped(ni) {
		return
	}
	var g *Graphics
	if b.opts.overrides {
		g = ni.GraphicsOverride()
	}
	shaperOf(np.Strategy).genShape(b, ni, g)
}

// PolyCollector is a [Sink] that keeps every polygon, for rendering.
type PolyCollector struct {
	Polys []Poly
	// Skip, if set, suppresses layers.
	Skip func(*Layer) bool
}

func (c *PolyCollector) AddPoly(p Poly) {
	c.Polys = append(c.Polys, p)
}

func (c *PolyCollector) SkipLayer(l *Layer) bool {
	return c.Skip != nil && c.Skip(l)
}

// ShapeOf returns the polygons of ni.
func ShapeOf(ni *Instance, opts ...BuilderOption) []Poly {
	var c PolyCollector
	NewBuilder(&c, opts...).Node(ni)
	return c.Polys
}
