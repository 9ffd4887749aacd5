package prim

import "fmt"

// Representation says how the points of a [ShapeTemplate] are stored.
type Representation uint8

const (
	// PointsRep stores an explicit list of points.
	PointsRep Representation = iota
	// BoxRep stores the low and high corners of an axis-aligned box.
	BoxRep
)

func (r Representation) String() string {
	switch r {
	case PointsRep:
		return "points"
	case BoxRep:
		return "box"
	default:
		return fmt.Sprintf("Representation(%d)", r)
	}
}

// ShapeTemplate describes one polygon of a prototype in parametric form.
// Templates belong to a prototype and are never modified once the technology
// is frozen; [ShapeTemplate.Scaled] and [ShapeTemplate.Extended] return
// copies.
type ShapeTemplate struct {
	Layer  *Layer `validate:"required"`
	Style  Style
	Rep    Representation
	Points []TechPoint `validate:"required,min=1"`
	// Message is the text placed by text styles.
	Message string
	// TextSize is the relative size of Message; 0 means unspecified.
	TextSize float64 `validate:"gte=0"`
	// PortIndex is the index of the port this polygon belongs to, or -1.
	PortIndex int `validate:"gte=-1"`
}

// NewTemplate returns a template with an explicit point list.
func NewTemplate(layer *Layer, style Style, pts ...TechPoint) ShapeTemplate {
	return ShapeTemplate{
		Layer:     layer,
		Style:     style,
		Rep:       PointsRep,
		Points:    pts,
		PortIndex: -1,
	}
}

// NewBoxTemplate returns a template in box representation.
func NewBoxTemplate(layer *Layer, style Style, lo, hi TechPoint) ShapeTemplate {
	return ShapeTemplate{
		Layer:     layer,
		Style:     style,
		Rep:       BoxRep,
		Points:    []TechPoint{lo, hi},
		PortIndex: -1,
	}
}

// NewTextTemplate returns a template placing msg at pt.
func NewTextTemplate(layer *Layer, style Style, msg string, size float64, pt TechPoint) ShapeTemplate {
	t := NewTemplate(layer, style, pt)
	t.Message = msg
	t.TextSize = size
	return t
}

// Resolve returns the points of the template at the given instance size.
// A box yields its four corners.
func (t ShapeTemplate) Resolve(sz Size) []Point {
	if t.Rep == BoxRep {
		if len(t.Points) != 2 {
			panic(fmt.Sprintf("prim: box template on layer %s has %d points, want 2", t.Layer, len(t.Points)))
		}
		c := NewRectFromPoints(t.Points[0].At(sz), t.Points[1].At(sz)).Corners()
		return c[:]
	}
	out := make([]Point, len(t.Points))
	for i, tp := range t.Points {
		out[i] = tp.At(sz)
	}
	return out
}

// clone returns a copy that shares nothing with t.
func (t ShapeTemplate) clone() ShapeTemplate {
	t.Points = append([]TechPoint(nil), t.Points...)
	return t
}

// Scaled returns a copy of the template scaled by f about the center.
func (t ShapeTemplate) Scaled(f float64) ShapeTemplate {
	out := t.clone()
	for i, tp := range out.Points {
		out.Points[i] = TechPoint{X: tp.X.Scaled(f), Y: tp.Y.Scaled(f)}
	}
	return out
}

// Extended returns a copy of the template whose points that track the bottom
// edge move down by dBottom and whose points that track the top edge move up
// by dTop.
func (t ShapeTemplate) Extended(dBottom, dTop float64) ShapeTemplate {
	out := t.clone()
	for i, tp := range out.Points {
		switch {
		case tp.Y.Multiplier > 0:
			out.Points[i].Y = tp.Y.Shifted(dTop)
		case tp.Y.Multiplier < 0:
			out.Points[i].Y = tp.Y.Shifted(-dBottom)
		}
	}
	return out
}

// Equal reports whether two templates are structurally identical.
func (t ShapeTemplate) Equal(o ShapeTemplate) bool {
	if t.Layer != o.Layer || t.Style != o.Style || t.Rep != o.Rep ||
		t.Message != o.Message || t.TextSize != o.TextSize || t.PortIndex != o.PortIndex ||
		len(t.Points) != len(o.Points) {
		return false
	}
	for i := range t.Points {
		if t.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}
