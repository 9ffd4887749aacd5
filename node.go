package prim

import (
	"fmt"
	"strings"
)

// NodeFlags are boolean properties of a [PrimitiveNode].
type NodeFlags uint16

const (
	// WipeOn1or2 hides a pin that one or two wipable arcs fully cover.
	WipeOn1or2 NodeFlags = 1 << iota
	CanBeZeroSize
	// HoldsOutline marks prototypes whose instances may carry a free-form
	// outline.
	HoldsOutline
	Square
	// PartialCircle marks circles whose instances may carry start and sweep
	// angles.
	PartialCircle
	EdgeSelect
	ArcsShrink
)

var nodeFlagNames = [...]string{
	"wipes", "canBeZeroSize", "holdsOutline", "square", "partialCircle", "edgeSelect", "arcsShrink",
}

func (f NodeFlags) Has(o NodeFlags) bool {
	return f&o == o
}

func (f NodeFlags) String() string {
	var names []string
	for i, n := range nodeFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, ",")
}

// ParseNodeFlag returns the flag with the given name.
func ParseNodeFlag(name string) (NodeFlags, error) {
	for i, n := range nodeFlagNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("prim: unknown node flag %q", name)
}

// Strategy selects how the shape and bounds of a prototype are generated.
type Strategy uint8

const (
	// StrategyTemplate emits the prototype's templates unchanged.
	StrategyTemplate Strategy = iota
	// StrategyOutline emits the instance's outline if it has one.
	StrategyOutline
	// StrategySpline is StrategyOutline drawn as a cardinal spline.
	StrategySpline
	// StrategyPartialCircle draws arcs and ellipses from instance angles.
	StrategyPartialCircle
	// StrategyVariant selects the templates by the instance's variant code.
	StrategyVariant
	// StrategyBlob adds a junction dot to pins with three or more connections.
	StrategyBlob
	// StrategyGate grows the input side of a gate to reach every input.
	StrategyGate
)

var strategyNames = [...]string{"template", "outline", "spline", "partialCircle", "variant", "blob", "gate"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy is the inverse of [Strategy.String].
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("prim: unknown strategy %q", name)
}

// SelectionGeometry describes the input side of a prototype with a
// [PortSelection] port.
type SelectionGeometry uint8

const (
	SelectNone SelectionGeometry = iota
	// SelectStraight puts inputs on a straight edge (AND, buffer, mux).
	SelectStraight
	// SelectCurved puts inputs on the curved back of an OR or XOR gate.
	SelectCurved
	// SelectSwitch puts inputs on the contacts of a switch, inset from the edge.
	SelectSwitch
)

var selectionNames = [...]string{"none", "straight", "curved", "switch"}

func (s SelectionGeometry) String() string {
	if int(s) < len(selectionNames) {
		return selectionNames[s]
	}
	return fmt.Sprintf("SelectionGeometry(%d)", s)
}

// ParseSelectionGeometry is the inverse of [SelectionGeometry.String].
func ParseSelectionGeometry(name string) (SelectionGeometry, error) {
	for i, n := range selectionNames {
		if n == name {
			return SelectionGeometry(i), nil
		}
	}
	return 0, fmt.Errorf("prim: unknown selection geometry %q", name)
}

// PrimitiveNode is the prototype of a primitive: its templates, ports and
// nominal geometry. Prototypes are built once with their technology and are
// read-only after [Technology.Freeze].
type PrimitiveNode struct {
	Name string      `validate:"required"`
	Tech *Technology `validate:"-"`
	// Size is the nominal size of new instances.
	Size Size
	// BaseRect is the highlight box and FullRect the bounds including any
	// overhang. Both track the instance size.
	BaseRect EdgeRect
	FullRect EdgeRect
	// Templates is the default template list, in painter's order.
	Templates []ShapeTemplate `validate:"required,dive"`
	Ports     []*PrimitivePort `validate:"dive"`
	Function  Function
	Flags     NodeFlags
	Strategy  Strategy
	// Family holds the alternatives of a StrategyVariant prototype.
	Family *VariantFamily `validate:"-"`
	// Selection is the input-side geometry of prototypes with a selection port.
	Selection SelectionGeometry
	// Grow is drawn, extended, when a StrategyGate prototype must reach inputs
	// beyond its body.
	Grow *ShapeTemplate `validate:"omitempty"`
}

func (np *PrimitiveNode) String() string {
	if np.Tech != nil {
		return np.Tech.Name + ":" + np.Name
	}
	return np.Name
}

// Port returns the port with the given name, or nil.
func (np *PrimitiveNode) Port(name string) *PrimitivePort {
	for _, pp := range np.Ports {
		if pp.Name == name {
			return pp
		}
	}
	return nil
}

// ActiveTemplates returns the templates an instance with the given variant
// code draws. Codes outside the family select the default templates.
func (np *PrimitiveNode) ActiveTemplates(code int) []ShapeTemplate {
	if np.Family != nil {
		return np.Family.Templates(code)
	}
	return np.Templates
}

// FunctionOf returns the function of an instance with the given variant code.
func (np *PrimitiveNode) FunctionOf(code int) Function {
	if np.Family != nil {
		return np.Family.Function(code)
	}
	return np.Function
}

// NewInstance returns an instance of np at its nominal size at the origin.
func (np *PrimitiveNode) NewInstance() Instance {
	return Instance{Proto: np, Size: np.Size, Variant: -1}
}
