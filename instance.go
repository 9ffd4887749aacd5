package prim

import (
	"log/slog"
	"slices"
)

// Connection is an arc end attached to a port of an instance.
type Connection struct {
	Port *PrimitivePort
	// End is the arc's end point in cell coordinates.
	End Point
	Arc *ArcProto
}

// Instance is one placed occurrence of a prototype. Instances are values;
// the With methods return modified copies and never share slices with the
// receiver.
type Instance struct {
	Proto  *PrimitiveNode
	Size   Size
	Orient Orientation
	// Anchor is the position of the instance's center in cell coordinates.
	Anchor Point
	// Variant selects an alternative of the prototype's family, -1 for none.
	Variant int
	// Angles holds the start and sweep, in radians, of a partial circle.
	Angles [2]float64
	// Outline holds free-form points relative to the center. OutlineBreak
	// separates disjoint segments.
	Outline []Point
	Text    string
	// Color and Pattern override the appearance of every polygon. Pattern
	// must have 16 rows when present.
	Color       int
	Pattern     []int
	Connections []Connection
}

func (ni Instance) clone() Instance {
	ni.Outline = slices.Clone(ni.Outline)
	ni.Pattern = slices.Clone(ni.Pattern)
	ni.Connections = slices.Clone(ni.Connections)
	return ni
}

func (ni Instance) WithSize(sz Size) Instance {
	out := ni.clone()
	out.Size = sz
	return out
}

func (ni Instance) WithOrient(o Orientation) Instance {
	out := ni.clone()
	out.Orient = o
	return out
}

func (ni Instance) WithAnchor(pt Point) Instance {
	out := ni.clone()
	out.Anchor = pt
	return out
}

func (ni Instance) WithVariant(code int) Instance {
	out := ni.clone()
	out.Variant = code
	return out
}

func (ni Instance) WithAngles(start, sweep float64) Instance {
	out := ni.clone()
	out.Angles = [2]float64{start, sweep}
	return out
}

func (ni Instance) WithOutline(pts []Point) Instance {
	out := ni.clone()
	out.Outline = slices.Clone(pts)
	return out
}

func (ni Instance) WithText(s string) Instance {
	out := ni.clone()
	out.Text = s
	return out
}

func (ni Instance) WithGraphics(color int, pattern []int) Instance {
	out := ni.clone()
	out.Color = color
	out.Pattern = slices.Clone(pattern)
	return out
}

// WithConnection returns a copy with one more connection.
func (ni Instance) WithConnection(c Connection) Instance {
	out := ni.clone()
	out.Connections = append(out.Connections, c)
	return out
}

// Transform maps node-relative coordinates to cell coordinates.
func (ni *Instance) Transform() Affine {
	return ni.Orient.Affine().ThenTranslate(Vec2(ni.Anchor))
}

// Function returns the function of the instance, taking its variant into
// account.
func (ni *Instance) Function() Function {
	return ni.Proto.FunctionOf(ni.Variant)
}

// ConnectionsAt returns the connections attached to pp.
func (ni *Instance) ConnectionsAt(pp *PrimitivePort) []Connection {
	var out []Connection
	for _, c := range ni.Connections {
		if c.Port == pp {
			out = append(out, c)
		}
	}
	return out
}

// IsWiped reports whether the instance is a pin hidden by the arcs attached
// to it: one or two connections, all of wipable arcs.
func (ni *Instance) IsWiped() bool {
	if !ni.Proto.Flags.Has(WipeOn1or2) {
		return false
	}
	n := len(ni.Connections)
	if n < 1 || n > 2 {
		return false
	}
	for _, c := range ni.Connections {
		if c.Arc == nil || !c.Arc.Wipable {
			return false
		}
	}
	return true
}

// GraphicsOverride returns the appearance the instance asks for, or nil if
// it asks for none. A malformed pattern drops the whole override.
func (ni *Instance) GraphicsOverride() *Graphics {
	if ni.Color == 0 && ni.Pattern == nil {
		return nil
	}
	if ni.Pattern != nil && len(ni.Pattern) != patternRows {
		Logger().Warn("prim: dropping graphics override",
			slog.String("node", ni.Proto.String()),
			slog.Int("patternRows", len(ni.Pattern)),
			slog.Int("want", patternRows))
		return nil
	}
	return &Graphics{
		Color:   ni.Color,
		Pattern: slices.Clone(ni.Pattern),
		Filled:  ni.Pattern == nil,
	}
}
