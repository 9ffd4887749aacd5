// Package prim turns the parametric templates of circuit-symbol and layout
// primitives into polygons, port locations and bounding boxes for concrete
// instances.
//
// # Technologies and prototypes
//
// A [Technology] bundles [Layer] values, arc prototypes ([ArcProto]) and node
// prototypes ([PrimitiveNode]). It is built once, validated and frozen by
// [Technology.Freeze], and read-only from then on. A [Registry] hands frozen
// technologies out by name. Two technologies are built in: [NewSchematics]
// and [NewArtwork].
//
// A prototype describes its shape as a list of [ShapeTemplate] values. Each
// template has a layer, a [Style] and a list of [TechPoint] vertices, or two
// corners of a box. Coordinates are [EdgeCoord] values: a fixed offset from
// the center plus a multiple of the instance's width or height, so that one
// template serves every instance size.
//
// # Instances
//
// An [Instance] is one placed occurrence of a prototype: its size, its
// [Orientation], its anchor and whatever per-instance data its prototype
// understands, such as a variant code, the angles of a partial circle, a
// free-form outline or the arcs connected to it. Instances are values. The
// With methods return modified copies.
//
// # Builders and sinks
//
// A [Builder] resolves the templates of an instance and hands the resulting
// [Poly] values to a [Sink]. [PolyCollector] keeps them for rendering;
// [BoundsAccumulator] keeps only their extent. How a prototype's instances
// are drawn is chosen by its [Strategy]:
//
//   - [StrategyTemplate] draws the templates as they are
//   - [StrategyOutline] and [StrategySpline] draw the instance's outline
//   - [StrategyPartialCircle] draws arcs and ellipses
//   - [StrategyVariant] draws one alternative of a [VariantFamily]
//   - [StrategyBlob] adds a junction dot to busy pins
//   - [StrategyGate] extends a gate to reach all of its inputs
//
// Builders carry the polygon being assembled and are not safe for concurrent
// use. Everything else in this package is either immutable or a value, and
// may be shared.
//
// # Ports and bounds
//
// [PortShape] resolves the area of a port on an instance. Ports that grow
// with their instance use [ProportionalPortShape]; ports standing for any
// number of inputs use [SelectionPortShape], which finds a free attachment
// point near a target.
//
// [Bounds] returns the bounds of an instance. Prototypes whose shape only
// depends on the instance's size use their declared rectangle
// ([FastBounds]); all others are drawn into a [BoundsAccumulator]
// ([SlowBounds]). Both agree with what a [PolyCollector] receives.
//
// # Angles
//
// Arc and port angles are integers in tenths of a degree and wrap at
// [FullCircle]. The angles of partial circles are in radians.
//
// # Logging
//
// The package logs nothing by default. See [SetLogger].
package prim
