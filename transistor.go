package prim

// TransistorFlags are the inputs of [BuildTransistorDescription].
type TransistorFlags struct {
	// NTypeLike devices connect the gate with a plain stick; the others get
	// an inversion bubble.
	NTypeLike    bool
	Depletion    bool
	Native       bool
	FloatingGate bool
	// ThresholdShift is -1 for low, 0 for normal and +1 for high threshold.
	ThresholdShift int
	// HighVoltageStages is the number of battery tick pairs, 0 to 3.
	HighVoltageStages int
	FourthTerminal    bool
	CarbonNanotube    bool
}

// Geometry of the transistor symbol, for a nominal 4×4 instance centered on
// the origin. Source and drain leads run along the bottom edge, the gate
// terminal sits one unit above the top edge.
const (
	channelHalf     = 1.0
	gateBase        = 0.5
	thresholdStep   = 0.125
	floatingLift    = 0.5
	depletionHeight = 0.25
	bubbleRadius    = 0.25
	tickOuter       = 0.75
	tickStep        = 0.25
	tickLow         = 0.25
	tickHigh        = 0.75
	ringRadius      = 0.25
	ringPitch       = 0.5
)

var gateTerminal = TP(Center, FromTop(1))

// BuildTransistorDescription assembles the templates of a transistor symbol
// from fragments, always in this order:
//
//  1. channel bar with source and drain leads, or the leads and a ring
//     ladder for nanotube devices; native devices have no channel bar
//  2. depletion bar
//  3. floating gate bar
//  4. gate stub, raised or lowered by the threshold shift and lowered for
//     native devices
//  5. stick from the gate stub to the gate terminal, or a bubble and a
//     shorter stick for devices that are not N-type
//  6. one battery tick pair per high-voltage stage, each nearer the gate
//  7. fourth terminal stub
//
// The result depends only on the arguments and shares nothing with earlier
// results, so it can be cached and compared.
func BuildTransistorDescription(layer *Layer, f TransistorFlags) []ShapeTemplate {
	var ts []ShapeTemplate

	// 1
	switch {
	case f.CarbonNanotube:
		ts = append(ts, transistorLeads(layer)...)
		for x := -channelHalf + ringRadius; x < channelHalf; x += ringPitch {
			ts = append(ts, NewTemplate(layer, Circle, CP(x, 0), CP(x+ringRadius, 0)))
		}
	case f.Native:
		ts = append(ts, transistorLeads(layer)...)
	default:
		ts = append(ts, NewTemplate(layer, Opened,
			TP(LeftEdge, BottomEdge),
			TP(FromCenter(-channelHalf), BottomEdge),
			CP(-channelHalf, 0),
			CP(channelHalf, 0),
			TP(FromCenter(channelHalf), BottomEdge),
			TP(RightEdge, BottomEdge)))
	}

	// 2
	if f.Depletion {
		ts = append(ts, NewBoxTemplate(layer, Filled, CP(-channelHalf, 0), CP(channelHalf, depletionHeight)))
	}

	// 3
	if f.FloatingGate {
		ts = append(ts, NewTemplate(layer, Opened, CP(-channelHalf, gateBase), CP(channelHalf, gateBase)))
	}

	// 4
	gy := gateBase + thresholdStep*float64(f.ThresholdShift)
	if f.Native {
		gy -= thresholdStep
	}
	if f.FloatingGate {
		gy += floatingLift
	}
	ts = append(ts, NewTemplate(layer, Opened, CP(-channelHalf, gy), CP(channelHalf, gy)))

	// 5
	if f.NTypeLike {
		ts = append(ts, NewTemplate(layer, Opened, CP(0, gy), gateTerminal))
	} else {
		by := gy + bubbleRadius
		ts = append(ts,
			NewTemplate(layer, Circle, CP(0, by), CP(bubbleRadius, by)),
			NewTemplate(layer, Opened, CP(0, by+bubbleRadius), gateTerminal))
	}

	// 6
	for k := range min(max(f.HighVoltageStages, 0), 3) {
		x := tickOuter - tickStep*float64(k)
		ts = append(ts, NewTemplate(layer, Vectors,
			CP(-x, gy+tickLow), CP(-x, gy+tickHigh),
			CP(x, gy+tickLow), CP(x, gy+tickHigh)))
	}

	// 7
	if f.FourthTerminal {
		if f.Depletion || f.CarbonNanotube {
			ts = append(ts, NewTemplate(layer, OpenedDashed,
				CP(0, 0),
				TP(FromCenter(-0.5), FromBottom(0.5)),
				TP(Center, BottomEdge)))
		} else {
			ts = append(ts, NewTemplate(layer, Opened, CP(0, 0), TP(Center, BottomEdge)))
		}
	}
	return ts
}

// transistorLeads returns the source and drain leads without the channel bar
// between them.
func transistorLeads(layer *Layer) []ShapeTemplate {
	return []ShapeTemplate{
		NewTemplate(layer, Opened,
			TP(LeftEdge, BottomEdge),
			TP(FromCenter(-channelHalf), BottomEdge),
			CP(-channelHalf, 0)),
		NewTemplate(layer, Opened,
			CP(channelHalf, 0),
			TP(FromCenter(channelHalf), BottomEdge),
			TP(RightEdge, BottomEdge)),
	}
}

// TransistorFamily builds the variant family of a transistor prototype: for
// every [TransistorKind] an N-type alternative with code 2·kind and a P-type
// alternative with code 2·kind+1. The base is the plain N-type device.
func TransistorFamily(layer *Layer, fourTerminal bool) *VariantFamily {
	f := &VariantFamily{
		Base:         BuildTransistorDescription(layer, KindPlain.Flags(true, fourTerminal)),
		BaseFunction: TransistorFunction(KindPlain, true, fourTerminal),
	}
	for k := range TransistorKinds {
		for _, nType := range []bool{true, false} {
			f.Alternatives = append(f.Alternatives, Variant{
				Code:      len(f.Alternatives),
				Templates: BuildTransistorDescription(layer, k.Flags(nType, fourTerminal)),
				Function:  TransistorFunction(k, nType, fourTerminal),
			})
		}
	}
	return f
}

// TransistorCode returns the variant code of a transistor kind and polarity.
func TransistorCode(k TransistorKind, nType bool) int {
	if nType {
		return 2 * int(k)
	}
	return 2*int(k) + 1
}
