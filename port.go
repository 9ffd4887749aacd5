package prim

import "fmt"

// Characteristic is the electrical direction of a port.
type Characteristic uint8

const (
	CharUnknown Characteristic = iota
	CharInput
	CharOutput
	CharBidir
	CharPower
	CharGround
)

var characteristicNames = [...]string{"unknown", "in", "out", "bidir", "power", "ground"}

func (c Characteristic) String() string {
	if int(c) < len(characteristicNames) {
		return characteristicNames[c]
	}
	return fmt.Sprintf("Characteristic(%d)", c)
}

// PortMode selects how the rectangle of a port is resolved.
type PortMode uint8

const (
	// PortDefault resolves the four edges against the instance size.
	PortDefault PortMode = iota
	// PortRelative resolves the edges against the ratio of instance size to
	// nominal size, so the port moves in proportion to a stretch.
	PortRelative
	// PortProportional grows the fixed offsets of the edges by 1+scale,
	// where scale is the smaller of the width and height ratios.
	PortProportional
	// PortSelection stands for any number of equivalent attachment points
	// along an edge; see [SelectionPortShape].
	PortSelection
)

var portModeNames = [...]string{"default", "relative", "proportional", "selection"}

func (m PortMode) String() string {
	if int(m) < len(portModeNames) {
		return portModeNames[m]
	}
	return fmt.Sprintf("PortMode(%d)", m)
}

// PrimitivePort is a connection site on a [PrimitiveNode]. Its rectangle,
// resolved at an instance's size, is the legal attachment area.
type PrimitivePort struct {
	Name   string         `validate:"required"`
	Parent *PrimitiveNode `validate:"-"`
	// ArcKinds lists the arc prototypes that may connect here.
	ArcKinds []*ArcProto `validate:"-"`
	// Angle and AngleRange are in tenths of a degree.
	Angle      int `validate:"gte=0,lt=3600"`
	AngleRange int `validate:"gte=0,lte=1800"`
	// Topology groups ports that are electrically connected inside the node.
	Topology       int `validate:"gte=0"`
	Characteristic Characteristic
	Negatable      bool
	Left           EdgeCoord
	Bottom         EdgeCoord
	Right          EdgeCoord
	Top            EdgeCoord
	Mode           PortMode
	// Nominal is the rectangle a PortSelection port reports when no target
	// is given. Its coordinates are offsets at unit scale, grown like those
	// of a PortProportional port.
	Nominal Rect
}

func (pp *PrimitivePort) String() string {
	if pp.Parent != nil {
		return pp.Parent.Name + "." + pp.Name
	}
	return pp.Name
}

// Edges returns the port's rectangle as edge coordinates.
func (pp *PrimitivePort) Edges() EdgeRect {
	return EdgeRect{Left: pp.Left, Bottom: pp.Bottom, Right: pp.Right, Top: pp.Top}
}

// Connects reports whether arcs of prototype ap may attach to the port.
func (pp *PrimitivePort) Connects(ap *ArcProto) bool {
	for _, k := range pp.ArcKinds {
		if k == ap {
			return true
		}
	}
	return false
}
