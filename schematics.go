package prim

// Names of the built-in schematic technology and its parts.
const (
	SchematicsName = "schematic"

	WirePinName     = "Wire_Pin"
	BusPinName      = "Bus_Pin"
	WireConName     = "Wire_Con"
	TransistorName  = "Transistor"
	Transistor4Name = "Transistor-4"
	ResistorName    = "Resistor"
	CapacitorName   = "Capacitor"
	GroundName      = "Ground"
	PowerName       = "Power"
	GlobalName      = "Global"
	OffPageName     = "Off-Page"
	SourceName      = "Source"
	AndName         = "And"
	OrName          = "Or"
	XorName         = "Xor"
	BufferName      = "Buffer"
	MuxName         = "Mux"
	SwitchName      = "Switch"
	WireArcName     = "wire"
	BusArcName      = "bus"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// pointPort returns a port that is a single point.
func pointPort(name string, x, y EdgeCoord, angle int, ch Characteristic, topology int, arcs ...*ArcProto) *PrimitivePort {
	return &PrimitivePort{
		Name:           name,
		ArcKinds:       arcs,
		Angle:          angle,
		Topology:       topology,
		Characteristic: ch,
		Left:           x,
		Right:          x,
		Bottom:         y,
		Top:            y,
	}
}

// NewSchematics returns the frozen schematic-capture technology.
func NewSchematics() *Technology {
	t := NewTechnology(SchematicsName, "schematic capture")

	arcL := &Layer{Name: "Arc", Function: LayerWire, Graphics: Graphics{Color: 1, Filled: true}}
	busL := &Layer{Name: "Bus", Function: LayerBus, Graphics: Graphics{Color: 2, Filled: true}}
	node := &Layer{Name: "Node", Function: LayerArt, Graphics: Graphics{Color: 1}}
	text := &Layer{Name: "Text", Function: LayerText, Graphics: Graphics{Color: 1}}
	for _, l := range []*Layer{arcL, busL, node, text} {
		must(t.AddLayer(l))
	}

	wire := &ArcProto{
		Name:           WireArcName,
		Layers:         []ArcLayer{{Layer: arcL, Style: Filled}},
		AngleIncrement: 450,
		Wipable:        true,
	}
	bus := &ArcProto{
		Name:           BusArcName,
		Layers:         []ArcLayer{{Layer: busL, Style: Filled}},
		AngleIncrement: 450,
		Wipable:        true,
		DefaultWidth:   0.5,
	}
	must(t.AddArc(wire))
	must(t.AddArc(bus))

	for _, np := range []*PrimitiveNode{
		wirePin(arcL, wire),
		busPin(arcL, busL, wire, bus),
		wireCon(node, wire, bus),
		transistor(TransistorName, node, wire, false),
		transistor(Transistor4Name, node, wire, true),
		resistor(node, wire),
		capacitor(node, wire),
		ground(node, wire),
		power(node, wire),
		global(node, wire),
		offPage(node, wire, bus),
		source(node, text, wire),
		andGate(node, wire),
		orGate(OrName, FuncOr, node, wire, false),
		orGate(XorName, FuncXor, node, wire, true),
		buffer(node, wire),
		mux(node, wire),
		switchNode(node, wire),
	} {
		must(t.AddNode(np))
	}
	must(t.Freeze())
	return t
}

var centerPoint = CP(0, 0)

func wirePin(arcL *Layer, wire *ArcProto) *PrimitiveNode {
	return &PrimitiveNode{
		Name:      WirePinName,
		Size:      Sz(0.5, 0.5),
		BaseRect:  FullEdges,
		FullRect:  FullEdges,
		Templates: []ShapeTemplate{NewTemplate(arcL, Disc, centerPoint, TP(RightEdge, Center))},
		Ports:     []*PrimitivePort{pointPort("wire", Center, Center, 0, CharUnknown, 0, wire)},
		Function:  FuncPin,
		Flags:     WipeOn1or2 | Square | CanBeZeroSize | ArcsShrink,
		Strategy:  StrategyBlob,
	}
}

func busPin(arcL, busL *Layer, wire, bus *ArcProto) *PrimitiveNode {
	pp := pointPort("bus", Center, Center, 0, CharUnknown, 0, wire, bus)
	pp.AngleRange = HalfCircle
	return &PrimitiveNode{
		Name:     BusPinName,
		Size:     Sz(2, 2),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{
			NewTemplate(busL, Disc, centerPoint, TP(RightEdge, Center)),
			NewTemplate(arcL, Disc, centerPoint, TP(EdgeCoord{Multiplier: 0.25}, Center)),
		},
		Ports:    []*PrimitivePort{pp},
		Function: FuncPin,
		Flags:    WipeOn1or2 | Square,
		Strategy: StrategyBlob,
	}
}

func wireCon(node *Layer, wire, bus *ArcProto) *PrimitiveNode {
	pp := &PrimitivePort{
		Name:       "wire",
		ArcKinds:   []*ArcProto{wire, bus},
		AngleRange: HalfCircle,
		Left:       FromLeft(0.5),
		Bottom:     FromBottom(0.5),
		Right:      FromRight(-0.5),
		Top:        FromTop(-0.5),
	}
	return &PrimitiveNode{
		Name:     WireConName,
		Size:     Sz(2, 2),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{
			NewBoxTemplate(node, Closed, TP(LeftEdge, BottomEdge), TP(RightEdge, TopEdge)),
			NewTemplate(node, Vectors,
				TP(LeftEdge, Center), TP(RightEdge, Center),
				TP(Center, BottomEdge), TP(Center, TopEdge)),
		},
		Ports:    []*PrimitivePort{pp},
		Function: FuncConnect,
		Strategy: StrategyTemplate,
	}
}

// transistorFullRect includes the gate terminal above the top edge.
var transistorFullRect = EdgeRect{Left: LeftEdge, Bottom: BottomEdge, Right: RightEdge, Top: FromTop(1)}

func transistor(name string, node *Layer, wire *ArcProto, fourTerminal bool) *PrimitiveNode {
	fam := TransistorFamily(node, fourTerminal)
	ports := []*PrimitivePort{
		pointPort("g", Center, FromTop(1), RightAngle, CharInput, 0, wire),
		pointPort("s", LeftEdge, BottomEdge, HalfCircle, CharBidir, 1, wire),
		pointPort("d", RightEdge, BottomEdge, 0, CharBidir, 2, wire),
	}
	if fourTerminal {
		ports = append(ports, pointPort("b", Center, BottomEdge, 3*RightAngle, CharBidir, 3, wire))
	}
	return &PrimitiveNode{
		Name:      name,
		Size:      Sz(4, 4),
		BaseRect:  FullEdges,
		FullRect:  transistorFullRect,
		Templates: fam.Base,
		Ports:     ports,
		Function:  fam.BaseFunction,
		Strategy:  StrategyVariant,
		Family:    fam,
	}
}

func twoTerminal(name string, size Size, fn Function, templates []ShapeTemplate, a, b *PrimitivePort) *PrimitiveNode {
	return &PrimitiveNode{
		Name:      name,
		Size:      size,
		BaseRect:  FullEdges,
		FullRect:  FullEdges,
		Templates: templates,
		Ports:     []*PrimitivePort{a, b},
		Function:  fn,
		Strategy:  StrategyTemplate,
	}
}

func resistor(node *Layer, wire *ArcProto) *PrimitiveNode {
	return twoTerminal(ResistorName, Sz(6, 1), FuncResistor,
		[]ShapeTemplate{NewTemplate(node, Opened,
			TP(LeftEdge, Center),
			TP(FromCenter(-2), Center),
			TP(FromCenter(-1.5), TopEdge),
			TP(FromCenter(-0.5), BottomEdge),
			TP(FromCenter(0.5), TopEdge),
			TP(FromCenter(1.5), BottomEdge),
			TP(FromCenter(2), Center),
			TP(RightEdge, Center))},
		pointPort("a", LeftEdge, Center, HalfCircle, CharUnknown, 0, wire),
		pointPort("b", RightEdge, Center, 0, CharUnknown, 1, wire))
}

func capacitor(node *Layer, wire *ArcProto) *PrimitiveNode {
	return twoTerminal(CapacitorName, Sz(3, 4), FuncCapacitor,
		[]ShapeTemplate{NewTemplate(node, Vectors,
			TP(LeftEdge, FromCenter(0.5)), TP(RightEdge, FromCenter(0.5)),
			TP(LeftEdge, FromCenter(-0.5)), TP(RightEdge, FromCenter(-0.5)),
			TP(Center, FromCenter(0.5)), TP(Center, TopEdge),
			TP(Center, FromCenter(-0.5)), TP(Center, BottomEdge))},
		pointPort("a", Center, TopEdge, RightAngle, CharUnknown, 0, wire),
		pointPort("b", Center, BottomEdge, 3*RightAngle, CharUnknown, 1, wire))
}

func ground(node *Layer, wire *ArcProto) *PrimitiveNode {
	return &PrimitiveNode{
		Name:     GroundName,
		Size:     Sz(3, 4),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{NewTemplate(node, Vectors,
			TP(Center, TopEdge), TP(Center, Center),
			TP(LeftEdge, Center), TP(RightEdge, Center),
			TP(FromLeft(0.5), FromBottom(1)), TP(FromRight(-0.5), FromBottom(1)),
			TP(FromLeft(1), BottomEdge), TP(FromRight(-1), BottomEdge))},
		Ports:    []*PrimitivePort{pointPort("gnd", Center, TopEdge, RightAngle, CharGround, 0, wire)},
		Function: FuncGround,
		Strategy: StrategyTemplate,
	}
}

func power(node *Layer, wire *ArcProto) *PrimitiveNode {
	return &PrimitiveNode{
		Name:     PowerName,
		Size:     Sz(3, 3),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{
			NewTemplate(node, Circle, centerPoint, TP(RightEdge, Center)),
			NewTemplate(node, Vectors, TP(Center, BottomEdge), TP(Center, FromBottom(0.5))),
		},
		Ports:    []*PrimitivePort{pointPort("vdd", Center, BottomEdge, 3*RightAngle, CharPower, 0, wire)},
		Function: FuncPower,
		Flags:    Square,
		Strategy: StrategyTemplate,
	}
}

func global(node *Layer, wire *ArcProto) *PrimitiveNode {
	pp := &PrimitivePort{
		Name:           "global",
		ArcKinds:       []*ArcProto{wire},
		AngleRange:     HalfCircle,
		Characteristic: CharBidir,
		Left:           FromCenter(-0.5),
		Bottom:         FromCenter(-0.5),
		Right:          FromCenter(0.5),
		Top:            FromCenter(0.5),
		Mode:           PortProportional,
	}
	return &PrimitiveNode{
		Name:     GlobalName,
		Size:     Sz(3, 3),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{NewTemplate(node, Closed,
			TP(LeftEdge, Center), TP(Center, TopEdge), TP(RightEdge, Center), TP(Center, BottomEdge))},
		Ports:    []*PrimitivePort{pp},
		Function: FuncGlobal,
		Strategy: StrategyTemplate,
	}
}

func offPage(node *Layer, wire, bus *ArcProto) *PrimitiveNode {
	// The ports track the ends of the arrow as it is stretched, at nominal
	// scale two units either side of the center.
	side := func(name string, x float64, angle int, topo int) *PrimitivePort {
		pp := pointPort(name, EdgeCoord{Multiplier: x}, Center, angle, CharBidir, topo, wire, bus)
		pp.Mode = PortRelative
		return pp
	}
	return &PrimitiveNode{
		Name:     OffPageName,
		Size:     Sz(4, 2),
		BaseRect: FullEdges,
		FullRect: FullEdges,
		Templates: []ShapeTemplate{NewTemplate(node, Closed,
			TP(LeftEdge, BottomEdge),
			TP(FromRight(-1), BottomEdge),
			TP(RightEdge, Center),
			TP(FromRight(-1), TopEdge),
			TP(LeftEdge, TopEdge))},
		Ports:    []*PrimitivePort{side("a", -2, HalfCircle, 0), side("y", 2, 0, 0)},
		Function: FuncOffPage,
		Strategy: StrategyTemplate,
	}
}

func source(node, text *Layer, wire *ArcProto) *PrimitiveNode {
	n := twoTerminal(SourceName, Sz(6, 6), FuncSource,
		[]ShapeTemplate{
			NewTemplate(node, Circle, centerPoint, TP(RightEdge, Center)),
			NewTextTemplate(text, TextCenter, "V", 2, centerPoint),
		},
		pointPort("plus", Center, TopEdge, RightAngle, CharUnknown, 0, wire),
		pointPort("minus", Center, BottomEdge, 3*RightAngle, CharUnknown, 1, wire))
	n.Flags = Square
	return n
}

// gateInput returns the selection port of a gate. Its nominal area is the
// input edge of a gate of the given nominal size.
func gateInput(w, h float64, wire *ArcProto) *PrimitivePort {
	return &PrimitivePort{
		Name:           "a",
		ArcKinds:       []*ArcProto{wire},
		Angle:          HalfCircle,
		Characteristic: CharInput,
		Negatable:      true,
		Left:           LeftEdge,
		Bottom:         Center,
		Right:          LeftEdge,
		Top:            Center,
		Mode:           PortSelection,
		Nominal:        Rect{X0: -w / 4, Y0: -h / 4, X1: -w / 4, Y1: h / 4},
	}
}

func gateOutput(wire *ArcProto) *PrimitivePort {
	pp := pointPort("y", RightEdge, Center, 0, CharOutput, 1, wire)
	pp.Negatable = true
	return pp
}

// inputEdge is the line the inputs of a straight gate attach to.
func inputEdge(node *Layer, x EdgeCoord) *ShapeTemplate {
	t := NewTemplate(node, Opened, TP(x, BottomEdge), TP(x, TopEdge))
	return &t
}

// frontArc is the rounded front of AND, OR and XOR gates: a half circle about
// the center from the bottom edge to the top edge.
func frontArc(node *Layer) ShapeTemplate {
	return NewTemplate(node, CircleArc, centerPoint, TP(Center, BottomEdge), TP(Center, TopEdge))
}

func outputLead(node *Layer) ShapeTemplate {
	return NewTemplate(node, Opened, TP(FromRight(-1), Center), TP(RightEdge, Center))
}

func gate(name string, fn Function, sel SelectionGeometry, size Size, full EdgeRect, grow *ShapeTemplate, wire *ArcProto, templates ...ShapeTemplate) *PrimitiveNode {
	return &PrimitiveNode{
		Name:      name,
		Size:      size,
		BaseRect:  FullEdges,
		FullRect:  full,
		Templates: templates,
		Ports:     []*PrimitivePort{gateInput(size.Width, size.Height, wire), gateOutput(wire)},
		Function:  fn,
		Strategy:  StrategyGate,
		Selection: sel,
		Grow:      grow,
	}
}

func andGate(node *Layer, wire *ArcProto) *PrimitiveNode {
	return gate(AndName, FuncAnd, SelectStraight, Sz(8, 6), FullEdges, inputEdge(node, LeftEdge), wire,
		NewTemplate(node, Opened,
			TP(Center, TopEdge), TP(LeftEdge, TopEdge), TP(LeftEdge, BottomEdge), TP(Center, BottomEdge)),
		frontArc(node),
		outputLead(node))
}

// orGate builds OR, and XOR with a second back curve behind the first. The
// back curve is centered curveDepth behind the input edge, the same circle
// the selection port places inputs on.
func orGate(name string, fn Function, node *Layer, wire *ArcProto, xor bool) *PrimitiveNode {
	back := func(dx float64) ShapeTemplate {
		return NewTemplate(node, CircleArc,
			TP(FromLeft(dx-curveDepth), Center),
			TP(FromLeft(dx), BottomEdge),
			TP(FromLeft(dx), TopEdge))
	}
	ts := []ShapeTemplate{
		back(0),
		NewTemplate(node, Opened, TP(LeftEdge, TopEdge), TP(Center, TopEdge)),
		NewTemplate(node, Opened, TP(LeftEdge, BottomEdge), TP(Center, BottomEdge)),
		frontArc(node),
		outputLead(node),
	}
	full := FullEdges
	if xor {
		ts = append(ts, back(-1))
		full.Left = FromLeft(-1)
	}
	return gate(name, fn, SelectCurved, Sz(8, 6), full, inputEdge(node, LeftEdge), wire, ts...)
}

func buffer(node *Layer, wire *ArcProto) *PrimitiveNode {
	return gate(BufferName, FuncBuffer, SelectStraight, Sz(6, 6), FullEdges, inputEdge(node, LeftEdge), wire,
		NewTemplate(node, Closed, TP(LeftEdge, TopEdge), TP(FromRight(-1), Center), TP(LeftEdge, BottomEdge)),
		outputLead(node))
}

func mux(node *Layer, wire *ArcProto) *PrimitiveNode {
	return gate(MuxName, FuncMux, SelectStraight, Sz(8, 10), FullEdges, inputEdge(node, LeftEdge), wire,
		NewTemplate(node, Closed,
			TP(LeftEdge, BottomEdge), TP(FromRight(-1), FromBottom(2)),
			TP(FromRight(-1), FromTop(-2)), TP(LeftEdge, TopEdge)),
		outputLead(node))
}

func switchNode(node *Layer, wire *ArcProto) *PrimitiveNode {
	return gate(SwitchName, FuncSwitch, SelectSwitch, Sz(6, 4), FullEdges, inputEdge(node, FromLeft(switchIndent)), wire,
		NewTemplate(node, Opened, TP(LeftEdge, Center), TP(FromLeft(switchIndent), Center)),
		NewTemplate(node, Opened, TP(FromRight(-1), Center), TP(FromLeft(switchIndent), FromTop(-0.5))),
		NewTemplate(node, Disc, TP(FromRight(-1), Center), TP(FromRight(-0.75), Center)),
		outputLead(node))
}
