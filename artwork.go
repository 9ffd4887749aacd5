package prim

// Names of the built-in artwork technology and its parts.
const (
	ArtworkName = "artwork"

	CircleName         = "Circle"
	ThickCircleName    = "Thick-Circle"
	FilledCircleName   = "Filled-Circle"
	OpenedPolygonName  = "Opened-Polygon"
	DottedPolygonName  = "Opened-Dotted-Polygon"
	DashedPolygonName  = "Opened-Dashed-Polygon"
	ThickerPolygonName = "Opened-Thicker-Polygon"
	ClosedPolygonName  = "Closed-Polygon"
	FilledPolygonName  = "Filled-Polygon"
	SplineName         = "Spline"
	BoxName            = "Box"
	CrossedBoxName     = "Crossed-Box"
	FilledBoxName      = "Filled-Box"
	ArrowName          = "Arrow"
	PinName            = "Pin"
)

// NewArtwork returns the frozen artwork technology: free-form graphics with
// no electrical meaning.
func NewArtwork() *Technology {
	t := NewTechnology(ArtworkName, "general purpose drawing")
	g := &Layer{Name: "Graphics", Function: LayerArt, Graphics: Graphics{Color: 1, Filled: true}}
	must(t.AddLayer(g))

	arc := func(name string, style Style, shape ArcShape) *ArcProto {
		ap := &ArcProto{
			Name:   name,
			Layers: []ArcLayer{{Layer: g, Style: style}},
			Shape:  shape,
		}
		if shape == ArcDoubleLine {
			ap.DoubleOffset = 0.25
		}
		must(t.AddArc(ap))
		return ap
	}
	arcs := []*ArcProto{
		arc("Solid", Filled, ArcFilled),
		arc("Dotted", OpenedDotted, ArcFilled),
		arc("Dashed", OpenedDashed, ArcFilled),
		arc("Thicker", OpenedThick, ArcFilled),
		arc("Double", Filled, ArcDoubleLine),
		arc("Spring", Filled, ArcZigZag),
		arc("Marked", Filled, ArcPlusEnds),
	}

	site := func() []*PrimitivePort {
		pp := pointPort("site", Center, Center, 0, CharUnknown, 0, arcs...)
		pp.AngleRange = HalfCircle
		return []*PrimitivePort{pp}
	}
	node := func(name string, size Size, strategy Strategy, flags NodeFlags, templates ...ShapeTemplate) *PrimitiveNode {
		return &PrimitiveNode{
			Name:      name,
			Size:      size,
			BaseRect:  FullEdges,
			FullRect:  FullEdges,
			Templates: templates,
			Ports:     site(),
			Function:  FuncArt,
			Flags:     flags | EdgeSelect,
			Strategy:  strategy,
		}
	}
	polyline := []TechPoint{TP(LeftEdge, BottomEdge), TP(Center, TopEdge), TP(RightEdge, BottomEdge)}
	polygon := func(name string, style Style) *PrimitiveNode {
		return node(name, Sz(6, 6), StrategyOutline, HoldsOutline, NewTemplate(g, style, polyline...))
	}
	circle := func(name string, style Style) *PrimitiveNode {
		return node(name, Sz(6, 6), StrategyPartialCircle, PartialCircle,
			NewTemplate(g, style, centerPoint, TP(RightEdge, Center)))
	}
	box := func(name string, style Style) *PrimitiveNode {
		return node(name, Sz(6, 6), StrategyTemplate, 0,
			NewBoxTemplate(g, style, TP(LeftEdge, BottomEdge), TP(RightEdge, TopEdge)))
	}

	for _, np := range []*PrimitiveNode{
		circle(CircleName, Circle),
		circle(ThickCircleName, ThickCircle),
		circle(FilledCircleName, Disc),
		polygon(OpenedPolygonName, Opened),
		polygon(DottedPolygonName, OpenedDotted),
		polygon(DashedPolygonName, OpenedDashed),
		polygon(ThickerPolygonName, OpenedThick),
		polygon(ClosedPolygonName, Closed),
		polygon(FilledPolygonName, Filled),
		node(SplineName, Sz(6, 6), StrategySpline, HoldsOutline, NewTemplate(g, Opened,
			TP(LeftEdge, BottomEdge), TP(FromCenter(-1), TopEdge), TP(FromCenter(1), BottomEdge), TP(RightEdge, TopEdge))),
		box(BoxName, Closed),
		box(CrossedBoxName, Crossed),
		box(FilledBoxName, Filled),
		node(ArrowName, Sz(2, 2), StrategyTemplate, 0, NewTemplate(g, Opened,
			TP(LeftEdge, TopEdge), TP(RightEdge, Center), TP(LeftEdge, BottomEdge))),
		node(PinName, Sz(1, 1), StrategyTemplate, Square|WipeOn1or2,
			NewTemplate(g, Disc, centerPoint, TP(RightEdge, Center))),
	} {
		must(t.AddNode(np))
	}
	must(t.Freeze())
	return t
}
