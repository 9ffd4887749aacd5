// Package techxml is the declarative description of a technology, read and
// written as XML, and a checker that holds a built technology against it.
//
// The description exists to keep two representations of the same technology
// in sync while either is being edited. It is not used to draw anything.
package techxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"honnef.co/go/prim"
)

// Description is the root element of a technology description.
type Description struct {
	XMLName     xml.Name `xml:"technology"`
	Name        string   `xml:"name,attr"`
	Description string   `xml:"description,omitempty"`
	Layers      []Layer  `xml:"layers>layer"`
	Arcs        []Arc    `xml:"arcs>arc"`
	Nodes       []Node   `xml:"nodes>node"`
}

type Layer struct {
	Name     string `xml:"name,attr"`
	Function string `xml:"function,attr"`
	Color    int    `xml:"color,attr,omitempty"`
	Filled   bool   `xml:"filled,attr,omitempty"`
}

type Arc struct {
	Name           string     `xml:"name,attr"`
	Shape          string     `xml:"shape,attr"`
	Directional    bool       `xml:"directional,attr,omitempty"`
	FixedAngle     bool       `xml:"fixedAngle,attr,omitempty"`
	Wipable        bool       `xml:"wipable,attr,omitempty"`
	AngleIncrement int        `xml:"angleIncrement,attr,omitempty"`
	DoubleOffset   float64    `xml:"doubleOffset,attr,omitempty"`
	DefaultWidth   float64    `xml:"defaultWidth,attr,omitempty"`
	Layers         []ArcLayer `xml:"layer"`
}

type ArcLayer struct {
	Layer  string  `xml:"name,attr"`
	Style  string  `xml:"style,attr"`
	Extend float64 `xml:"extend,attr,omitempty"`
}

// Coord is an edge coordinate.
type Coord struct {
	Multiplier float64 `xml:"m,attr"`
	Offset     float64 `xml:"a,attr"`
}

type Rect struct {
	Left   Coord `xml:"left"`
	Bottom Coord `xml:"bottom"`
	Right  Coord `xml:"right"`
	Top    Coord `xml:"top"`
}

// Box is a rectangle in absolute coordinates.
type Box struct {
	X0 float64 `xml:"x0,attr"`
	Y0 float64 `xml:"y0,attr"`
	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
}

type Point struct {
	X Coord `xml:"x"`
	Y Coord `xml:"y"`
}

type Template struct {
	Layer    string  `xml:"layer,attr"`
	Style    string  `xml:"style,attr"`
	Rep      string  `xml:"rep,attr"`
	Message  string  `xml:"message,attr,omitempty"`
	TextSize float64 `xml:"textSize,attr,omitempty"`
	Port     string  `xml:"port,attr,omitempty"`
	Points   []Point `xml:"point"`
}

type Port struct {
	Name           string   `xml:"name,attr"`
	Mode           string   `xml:"mode,attr"`
	Characteristic string   `xml:"characteristic,attr"`
	Angle          int      `xml:"angle,attr"`
	AngleRange     int      `xml:"angleRange,attr"`
	Topology       int      `xml:"topology,attr"`
	Negatable      bool     `xml:"negatable,attr,omitempty"`
	Arcs           []string `xml:"arc"`
	Rect           Rect     `xml:"rect"`
	// Nominal is the area a selection port reports without a target.
	Nominal *Box `xml:"nominal"`
}

// Variant is one alternative of a multi-function node. Its templates are
// given as indices into the node's template list, which for such nodes is
// the merged list of all alternatives.
type Variant struct {
	Code     int    `xml:"code,attr"`
	Function string `xml:"function,attr"`
	Uses     []int  `xml:"use"`
}

type Node struct {
	Name      string     `xml:"name,attr"`
	Function  string     `xml:"function,attr"`
	Strategy  string     `xml:"strategy,attr"`
	Selection string     `xml:"selection,attr,omitempty"`
	Flags     []string   `xml:"flag"`
	Width     float64    `xml:"width,attr"`
	Height    float64    `xml:"height,attr"`
	BaseRect  Rect       `xml:"baseRect"`
	FullRect  Rect       `xml:"fullRect"`
	Templates []Template `xml:"template"`
	Grow      *Template  `xml:"grow"`
	Base      []int      `xml:"base>use"`
	Variants  []Variant  `xml:"variant"`
	Ports     []Port     `xml:"port"`
}

// Describe returns the description of t.
func Describe(t *prim.Technology) *Description {
	d := &Description{Name: t.Name, Description: t.Description}
	for l := range t.Layers() {
		d.Layers = append(d.Layers, Layer{
			Name:     l.Name,
			Function: l.Function.String(),
			Color:    l.Graphics.Color,
			Filled:   l.Graphics.Filled,
		})
	}
	for ap := range t.Arcs() {
		a := Arc{
			Name:           ap.Name,
			Shape:          ap.Shape.String(),
			Directional:    ap.Directional,
			FixedAngle:     ap.FixedAngle,
			Wipable:        ap.Wipable,
			AngleIncrement: ap.AngleIncrement,
			DoubleOffset:   ap.DoubleOffset,
			DefaultWidth:   ap.DefaultWidth,
		}
		for _, al := range ap.Layers {
			a.Layers = append(a.Layers, ArcLayer{Layer: al.Layer.Name, Style: al.Style.String(), Extend: al.Extend})
		}
		d.Arcs = append(d.Arcs, a)
	}
	for np := range t.Nodes() {
		d.Nodes = append(d.Nodes, DescribeNode(np))
	}
	return d
}

func coord(e prim.EdgeCoord) Coord {
	return Coord{Multiplier: e.Multiplier, Offset: e.Offset}
}

func rect(r prim.EdgeRect) Rect {
	return Rect{Left: coord(r.Left), Bottom: coord(r.Bottom), Right: coord(r.Right), Top: coord(r.Top)}
}

func template(np *prim.PrimitiveNode, t prim.ShapeTemplate) Template {
	out := Template{
		Layer:    t.Layer.Name,
		Style:    t.Style.String(),
		Rep:      t.Rep.String(),
		Message:  t.Message,
		TextSize: t.TextSize,
	}
	if t.PortIndex >= 0 && t.PortIndex < len(np.Ports) {
		out.Port = np.Ports[t.PortIndex].Name
	}
	for _, tp := range t.Points {
		out.Points = append(out.Points, Point{X: coord(tp.X), Y: coord(tp.Y)})
	}
	return out
}

// uses returns the positions of sub within the merged list, matching in
// order.
func uses(sub, merged []prim.ShapeTemplate) []int {
	var out []int
	next := 0
	for _, t := range sub {
		for j := next; j < len(merged); j++ {
			if merged[j].Equal(t) {
				out = append(out, j)
				next = j + 1
				break
			}
		}
	}
	return out
}

// DescribeNode returns the description of one prototype.
func DescribeNode(np *prim.PrimitiveNode) Node {
	n := Node{
		Name:     np.Name,
		Function: np.Function.String(),
		Strategy: np.Strategy.String(),
		Width:    np.Size.Width,
		Height:   np.Size.Height,
		BaseRect: rect(np.BaseRect),
		FullRect: rect(np.FullRect),
	}
	if np.Selection != prim.SelectNone {
		n.Selection = np.Selection.String()
	}
	for i := range 16 {
		if f := prim.NodeFlags(1 << i); np.Flags.Has(f) {
			n.Flags = append(n.Flags, f.String())
		}
	}
	templates := np.Templates
	if np.Family != nil {
		templates = np.Family.Merged()
		n.Base = uses(np.Family.Base, templates)
		for _, v := range np.Family.Alternatives {
			n.Variants = append(n.Variants, Variant{
				Code:     v.Code,
				Function: v.Function.String(),
				Uses:     uses(v.Templates, templates),
			})
		}
	}
	for _, t := range templates {
		n.Templates = append(n.Templates, template(np, t))
	}
	if np.Grow != nil {
		g := template(np, *np.Grow)
		n.Grow = &g
	}
	for _, pp := range np.Ports {
		p := Port{
			Name:           pp.Name,
			Mode:           pp.Mode.String(),
			Characteristic: pp.Characteristic.String(),
			Angle:          pp.Angle,
			AngleRange:     pp.AngleRange,
			Topology:       pp.Topology,
			Negatable:      pp.Negatable,
			Rect:           rect(pp.Edges()),
		}
		if pp.Nominal != (prim.Rect{}) {
			r := pp.Nominal
			p.Nominal = &Box{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
		}
		for _, ap := range pp.ArcKinds {
			p.Arcs = append(p.Arcs, ap.Name)
		}
		n.Ports = append(n.Ports, p)
	}
	return n
}

// Node returns the description of the node with the given name, or nil.
func (d *Description) Node(name string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i]
		}
	}
	return nil
}

// Encode writes d as indented XML.
func Encode(w io.Writer, d *Description) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("techxml: encode %s: %w", d.Name, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a description.
func Decode(r io.Reader) (*Description, error) {
	var d Description
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("techxml: decode: %w", err)
	}
	return &d, nil
}
