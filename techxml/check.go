package techxml

import (
	"fmt"
	"log/slog"
	"slices"

	"honnef.co/go/prim"
)

// MismatchError describes the first difference between a prototype and its
// description.
type MismatchError struct {
	Node  string
	Field string
	Want  any
	Got   any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("techxml: node %s: %s is %v, description says %v", e.Node, e.Field, e.Got, e.Want)
}

// Compare checks np against its description and returns a *MismatchError
// for the first field that differs.
func Compare(np *prim.PrimitiveNode, want *Node) error {
	got := DescribeNode(np)
	c := &comparer{node: np.Name}
	c.compareNode(&got, want)
	if c.err != nil {
		return c.err
	}
	return nil
}

// MustMatch is like Compare but panics on a mismatch. A mismatch means the
// two representations of a technology have drifted apart, which is a bug in
// one of them.
func MustMatch(np *prim.PrimitiveNode, want *Node) {
	if err := Compare(np, want); err != nil {
		panic(err)
	}
}

// MustMatchTechnology checks every node of d against t. Nodes that t lacks
// are mismatches; nodes that d does not describe are not checked.
func MustMatchTechnology(t *prim.Technology, d *Description) {
	for i := range d.Nodes {
		want := &d.Nodes[i]
		np := t.Node(want.Name)
		if np == nil {
			panic(&MismatchError{Node: want.Name, Field: "presence", Want: true, Got: false})
		}
		MustMatch(np, want)
		prim.Logger().Debug("techxml: node matches description",
			slog.String("technology", t.Name),
			slog.String("node", want.Name))
	}
}

type comparer struct {
	node string
	err  *MismatchError
}

func (c *comparer) eq(field string, got, want any) bool {
	if c.err != nil {
		return false
	}
	if got != want {
		c.err = &MismatchError{Node: c.node, Field: field, Want: want, Got: got}
		return false
	}
	return true
}

func (c *comparer) coord(field string, got, want Coord) {
	c.eq(field+".multiplier", got.Multiplier, want.Multiplier)
	c.eq(field+".offset", got.Offset, want.Offset)
}

func (c *comparer) rect(field string, got, want Rect) {
	c.coord(field+".left", got.Left, want.Left)
	c.coord(field+".bottom", got.Bottom, want.Bottom)
	c.coord(field+".right", got.Right, want.Right)
	c.coord(field+".top", got.Top, want.Top)
}

func (c *comparer) template(field string, got, want Template) {
	c.eq(field+".layer", got.Layer, want.Layer)
	c.eq(field+".style", got.Style, want.Style)
	c.eq(field+".rep", got.Rep, want.Rep)
	c.eq(field+".message", got.Message, want.Message)
	c.eq(field+".textSize", got.TextSize, want.TextSize)
	c.eq(field+".port", got.Port, want.Port)
	if !c.eq(field+".points", len(got.Points), len(want.Points)) {
		return
	}
	for i := range got.Points {
		f := fmt.Sprintf("%s.points[%d]", field, i)
		c.coord(f+".x", got.Points[i].X, want.Points[i].X)
		c.coord(f+".y", got.Points[i].Y, want.Points[i].Y)
	}
}

func (c *comparer) ints(field string, got, want []int) {
	if !slices.Equal(got, want) {
		c.eq(field, fmt.Sprint(got), fmt.Sprint(want))
	}
}

func (c *comparer) compareNode(got, want *Node) {
	c.eq("function", got.Function, want.Function)
	c.eq("strategy", got.Strategy, want.Strategy)
	c.eq("selection", got.Selection, want.Selection)
	if !slices.Equal(got.Flags, want.Flags) {
		c.eq("flags", fmt.Sprint(got.Flags), fmt.Sprint(want.Flags))
	}
	c.eq("width", got.Width, want.Width)
	c.eq("height", got.Height, want.Height)
	c.rect("baseRect", got.BaseRect, want.BaseRect)
	c.rect("fullRect", got.FullRect, want.FullRect)

	if c.eq("templates", len(got.Templates), len(want.Templates)) {
		for i := range got.Templates {
			c.template(fmt.Sprintf("templates[%d]", i), got.Templates[i], want.Templates[i])
		}
	}
	if c.eq("grow", got.Grow != nil, want.Grow != nil) && got.Grow != nil {
		c.template("grow", *got.Grow, *want.Grow)
	}

	c.ints("base", got.Base, want.Base)
	if c.eq("variants", len(got.Variants), len(want.Variants)) {
		for i := range got.Variants {
			f := fmt.Sprintf("variants[%d]", i)
			c.eq(f+".code", got.Variants[i].Code, want.Variants[i].Code)
			c.eq(f+".function", got.Variants[i].Function, want.Variants[i].Function)
			c.ints(f+".uses", got.Variants[i].Uses, want.Variants[i].Uses)
		}
	}

	if c.eq("ports", len(got.Ports), len(want.Ports)) {
		for i := range got.Ports {
			gp, wp := got.Ports[i], want.Ports[i]
			f := fmt.Sprintf("ports[%d]", i)
			c.eq(f+".name", gp.Name, wp.Name)
			c.eq(f+".mode", gp.Mode, wp.Mode)
			c.eq(f+".characteristic", gp.Characteristic, wp.Characteristic)
			c.eq(f+".angle", gp.Angle, wp.Angle)
			c.eq(f+".angleRange", gp.AngleRange, wp.AngleRange)
			c.eq(f+".topology", gp.Topology, wp.Topology)
			c.eq(f+".negatable", gp.Negatable, wp.Negatable)
			if !slices.Equal(gp.Arcs, wp.Arcs) {
				c.eq(f+".arcs", fmt.Sprint(gp.Arcs), fmt.Sprint(wp.Arcs))
			}
			c.rect(f+".rect", gp.Rect, wp.Rect)
			if c.eq(f+".nominal", gp.Nominal != nil, wp.Nominal != nil) && gp.Nominal != nil {
				c.eq(f+".nominal", *gp.Nominal, *wp.Nominal)
			}
		}
	}
}
