package prim

import "fmt"

// Style says how the points of a polygon are to be drawn.
type Style uint8

const (
	Filled Style = iota
	Closed
	Crossed
	Opened
	OpenedDashed
	OpenedDotted
	OpenedThick
	// Vectors draws independent line segments, two points each.
	Vectors
	// Disc, Circle and ThickCircle take a center point and a point on the
	// circumference.
	Disc
	Circle
	ThickCircle
	// CircleArc and ThickCircleArc take a center, a start point and an end
	// point, and run counterclockwise from start to end.
	CircleArc
	ThickCircleArc
	TextCenter
	TextLeft
	TextRight
	TextBox
)

var styleNames = [...]string{
	Filled:         "FILLED",
	Closed:         "CLOSED",
	Crossed:        "CROSSED",
	Opened:         "OPENED",
	OpenedDashed:   "OPENEDT2",
	OpenedDotted:   "OPENEDT1",
	OpenedThick:    "OPENEDT3",
	Vectors:        "VECTORS",
	Disc:           "DISC",
	Circle:         "CIRCLE",
	ThickCircle:    "THICKCIRCLE",
	CircleArc:      "CIRCLEARC",
	ThickCircleArc: "THICKCIRCLEARC",
	TextCenter:     "TEXTCENT",
	TextLeft:       "TEXTLEFT",
	TextRight:      "TEXTRIGHT",
	TextBox:        "TEXTBOX",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// ParseStyle is the inverse of [Style.String].
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("prim: unknown style %q", name)
}

// IsText reports whether the style places a text message.
func (s Style) IsText() bool {
	return s >= TextCenter && s <= TextBox
}

// IsCircular reports whether the first two points are a center and a point on
// the circumference.
func (s Style) IsCircular() bool {
	return s >= Disc && s <= ThickCircleArc
}

// IsArc reports whether the style is a circle arc.
func (s Style) IsArc() bool {
	return s == CircleArc || s == ThickCircleArc
}
