package prim

import (
	"log/slog"
	"math"
)

// nodeShaper generates the shape of the instances of one kind of prototype.
// The set of implementations is closed; prototypes pick one with their
// Strategy.
type nodeShaper interface {
	genShape(b *Builder, ni *Instance, g *Graphics)
	// dataDependent reports whether the shape of ni may extend beyond, or
	// fall short of, its prototype's FullRect.
	dataDependent(ni *Instance) bool
}

func shaperOf(s Strategy) nodeShaper {
	switch s {
	case StrategyTemplate:
		return templateShaper{}
	case StrategyOutline:
		return outlineShaper{}
	case StrategySpline:
		return outlineShaper{spline: true}
	case StrategyPartialCircle:
		return partialCircleShaper{}
	case StrategyVariant:
		return variantShaper{}
	case StrategyBlob:
		return blobShaper{}
	case StrategyGate:
		return gateShaper{}
	default:
		panic("prim: unknown strategy " + s.String())
	}
}

type templateShaper struct{}

func (templateShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	b.GenShapeOfNode(ni, ni.Proto, ni.Proto.Templates, g)
}

func (templateShaper) dataDependent(ni *Instance) bool { return belowNominal(ni) }

// belowNominal reports whether ni is smaller than its prototype in either
// axis. Template points at fixed offsets from the center may then lie outside
// FullRect.
func belowNominal(ni *Instance) bool {
	return ni.Size.Width < ni.Proto.Size.Width || ni.Size.Height < ni.Proto.Size.Height
}

type variantShaper struct{}

func (variantShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	b.GenShapeOfNode(ni, ni.Proto, ni.Proto.ActiveTemplates(ni.Variant), g)
}

// Every alternative of a family shares the prototype's FullRect, but only
// from the nominal size up.
func (variantShaper) dataDependent(ni *Instance) bool { return belowNominal(ni) }

// blobScale is the size of a junction dot relative to the pin it sits on.
const blobScale = 3

type blobShaper struct{}

func (blobShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	np := ni.Proto
	b.GenShapeOfNode(ni, np, np.Templates, g)
	if len(ni.Connections) >= 3 {
		b.GenShapeOfNode(ni, np, []ShapeTemplate{np.Templates[0].Scaled(blobScale)}, g)
	}
}

func (blobShaper) dataDependent(ni *Instance) bool {
	return len(ni.Connections) >= 3 || belowNominal(ni)
}

type outlineShaper struct {
	spline bool
}

func (s outlineShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	np := ni.Proto
	if len(ni.Outline) == 0 {
		if !s.spline {
			b.GenShapeOfNode(ni, np, np.Templates, g)
			return
		}
		// Without an outline a spline is drawn through its template points.
		for _, t := range np.Templates {
			if b.SkipLayer(t.Layer) {
				continue
			}
			for _, pt := range SplineCurve(Point{}, t.Resolve(ni.Size)) {
				b.PushPoint(pt)
			}
			b.PushPoly(t.Style, t.Layer, g, nil)
		}
		return
	}

	t := np.Templates[0]
	if b.SkipLayer(t.Layer) {
		return
	}
	closing := t.Style == Closed || t.Style == Filled
	for _, seg := range outlineSegments(ni.Outline) {
		start, count := seg[0], seg[1]
		if count < 2 {
			Logger().Debug("prim: skipping outline segment",
				slog.String("node", np.String()),
				slog.Int("start", start),
				slog.Int("points", count))
			continue
		}
		if s.spline {
			for _, pt := range SplineCurve(Point{}, ni.Outline[start:start+count]) {
				b.PushPoint(pt)
			}
		} else {
			b.PushOutlineSegment(ni.Outline, start, count, true, closing)
		}
		b.PushPoly(t.Style, t.Layer, g, nil)
	}
}

func (s outlineShaper) dataDependent(ni *Instance) bool {
	return s.spline || len(ni.Outline) > 0 || belowNominal(ni)
}

// outlineSegments splits an outline at break markers into (start, count)
// pairs. Empty segments, as produced by adjacent or trailing breaks, are
// reported with a count of 0.
func outlineSegments(pts []Point) [][2]int {
	var segs [][2]int
	start := 0
	for i, pt := range pts {
		if pt.IsBreak() {
			segs = append(segs, [2]int{start, i - start})
			start = i + 1
		}
	}
	return append(segs, [2]int{start, len(pts) - start})
}

type partialCircleShaper struct{}

func (partialCircleShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	np := ni.Proto
	start, sweep := ni.Angles[0], ni.Angles[1]
	w, h := ni.Size.Splat()
	full := start == 0 && sweep == 0
	if full && w == h {
		b.GenShapeOfNode(ni, np, np.Templates, g)
		return
	}

	t := np.Templates[0]
	if b.SkipLayer(t.Layer) {
		return
	}
	var center Point
	if w != h || full {
		style := Closed
		switch {
		case t.Style == Disc:
			if !full {
				b.PushPoint(center)
			}
			style = Filled
		case !full && t.Style == ThickCircle:
			style = OpenedThick
		case !full:
			style = Opened
		}
		for _, pt := range EllipsePoints(center, w, h, start, sweep) {
			b.PushPoint(pt)
		}
		b.PushPoly(style, t.Layer, g, nil)
		return
	}

	r := w / 2
	sin0, cos0 := math.Sincos(start)
	sin1, cos1 := math.Sincos(start + sweep)
	tail := Pt(r*cos0, r*sin0)
	head := Pt(r*cos1, r*sin1)
	if sweep < 0 {
		tail, head = head, tail
	}
	style := CircleArc
	if t.Style == ThickCircle {
		style = ThickCircleArc
	}
	b.PushPoint(center)
	b.PushPoint(tail)
	b.PushPoint(head)
	b.PushPoly(style, t.Layer, g, nil)
}

func (partialCircleShaper) dataDependent(ni *Instance) bool {
	return ni.Angles != [2]float64{} || ni.Size.Width != ni.Size.Height
}

type gateShaper struct{}

func (gateShaper) genShape(b *Builder, ni *Instance, g *Graphics) {
	np := ni.Proto
	b.GenShapeOfNode(ni, np, np.Templates, g)
	if np.Grow == nil {
		return
	}
	if dBottom, dTop := gateGrowth(ni); dBottom > 0 || dTop > 0 {
		b.GenShapeOfNode(ni, np, []ShapeTemplate{np.Grow.Extended(dBottom, dTop)}, g)
	}
}

// Gates are sized by their inputs, so their bounds always come from the
// emitted shape.
func (gateShaper) dataDependent(*Instance) bool { return true }

// gateGrowth returns how far the input side of a gate must extend below and
// above its body to reach every input connection.
func gateGrowth(ni *Instance) (dBottom, dTop float64) {
	inv := ni.Transform().Invert()
	half := ni.Size.Height / 2
	for _, c := range ni.Connections {
		if c.Port == nil || c.Port.Mode != PortSelection {
			continue
		}
		y := c.End.Transform(inv).Y
		dTop = max(dTop, y-half)
		dBottom = max(dBottom, -half-y)
	}
	return dBottom, dTop
}
