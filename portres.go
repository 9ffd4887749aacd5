package prim

import (
	"log/slog"
	"math"
)

// slotSpacing is the distance between neighbouring candidate positions on a
// selection port, per step of the slot index.
const slotSpacing = 1

// curveDepth is how far the center of the back curve of an OR or XOR gate
// lies behind its input edge.
const curveDepth = 4

// switchIndent is how far the contacts of a switch sit inside its input edge.
const switchIndent = 1

// PortShape returns the area of pp on ni, in cell coordinates. Selection
// ports report their nominal area; see [SelectionPortShape] for resolving a
// specific attachment point.
func PortShape(ni *Instance, pp *PrimitivePort) Poly {
	switch pp.Mode {
	case PortProportional:
		return ProportionalPortShape(ni, pp)
	case PortSelection:
		p, _ := SelectionPortShape(ni, pp, nil)
		return p
	case PortRelative:
		nw, nh := ni.Proto.Size.Splat()
		r := Rect{
			X0: pp.Left.Relative(ni.Size.Width, nw),
			Y0: pp.Bottom.Relative(ni.Size.Height, nh),
			X1: pp.Right.Relative(ni.Size.Width, nw),
			Y1: pp.Top.Relative(ni.Size.Height, nh),
		}
		return portPoly(ni, pp, r.Abs())
	default:
		return portPoly(ni, pp, pp.Edges().At(ni.Size))
	}
}

// PortCenter returns the center of the area of pp on ni.
func PortCenter(ni *Instance, pp *PrimitivePort) Point {
	return PortShape(ni, pp).Bounds().Center()
}

func portPoly(ni *Instance, pp *PrimitivePort, r Rect) Poly {
	aff := ni.Transform()
	c := r.Corners()
	pts := make([]Point, len(c))
	for i, pt := range c {
		pts[i] = pt.Transform(aff)
	}
	return Poly{Style: Filled, Points: pts, Port: pp}
}

// proportionalScale returns the smaller of the width and height ratios of ni
// to its nominal size, or 0 if either nominal extent is zero.
func proportionalScale(ni *Instance) float64 {
	nw, nh := ni.Proto.Size.Splat()
	if nw == 0 || nh == 0 {
		return 0
	}
	return min(ni.Size.Width/nw, ni.Size.Height/nh)
}

// ProportionalPortShape resolves a port that grows uniformly with its
// instance. The fixed offsets of the port's edges are multiplied by 1+scale,
// where scale is the smaller of the width and height ratios to the nominal
// size. The edges' multipliers are not used. A degenerate instance falls back
// to the plain edge resolution.
func ProportionalPortShape(ni *Instance, pp *PrimitivePort) Poly {
	scale := proportionalScale(ni)
	if scale == 0 {
		return portPoly(ni, pp, pp.Edges().At(ni.Size))
	}
	f := 1 + scale
	r := Rect{
		X0: pp.Left.Offset * f,
		Y0: pp.Bottom.Offset * f,
		X1: pp.Right.Offset * f,
		Y1: pp.Top.Offset * f,
	}
	return portPoly(ni, pp, r.Abs())
}

// selectionSlot returns the vertical position of the i'th candidate on a
// selection port. Candidates alternate above and below the centerline,
// moving outward.
func selectionSlot(i int) float64 {
	pos := float64((i+2)/2) * 2 * slotSpacing
	if i%2 == 1 {
		pos = -pos
	}
	return pos
}

// selectionIndent returns how far the candidate at height y lies inside the
// input edge at left, for a node of height h.
func selectionIndent(sel SelectionGeometry, left, y, h float64) float64 {
	switch sel {
	case SelectCurved:
		cx := left - curveDepth
		r := math.Sqrt(curveDepth*curveDepth + h*h/4)
		x := cx + math.Sqrt(max(r*r-y*y, 0))
		return max(0, x-left)
	case SelectSwitch:
		return switchIndent
	default:
		return 0
	}
}

// SelectionPortShape resolves a port that stands for any number of
// equivalent attachment points along the input edge of ni.
//
// With a nil target it returns the port's nominal area, grown like a
// proportional port, for drawing the port as a whole.
//
// Otherwise it returns the free candidate closest to target in Manhattan
// distance as a single-point polygon. Candidates are spaced along the input
// edge, alternating above and below the centerline; a candidate is occupied if
// a connection to pp ends exactly on it. If every candidate is occupied the
// last one considered is returned with ok set to false.
func SelectionPortShape(ni *Instance, pp *PrimitivePort, target *Point) (p Poly, ok bool) {
	if target == nil {
		f := 1.0
		if scale := proportionalScale(ni); scale != 0 {
			f = 1 + scale
		}
		r := Rect{
			X0: pp.Nominal.X0 * f,
			Y0: pp.Nominal.Y0 * f,
			X1: pp.Nominal.X1 * f,
			Y1: pp.Nominal.Y1 * f,
		}
		return portPoly(ni, pp, r.Abs()), true
	}

	conns := ni.ConnectionsAt(pp)
	total := max(len(conns)+2, 3)
	left := pp.Left.At(ni.Size.Width)
	aff := ni.Transform()
	cands := make([]Point, total)
	for i := range cands {
		y := selectionSlot(i)
		x := left + selectionIndent(ni.Proto.Selection, left, y, ni.Size.Height)
		cands[i] = Pt(x, y).Transform(aff)
	}
	pt, ok := nearestFree(pp, cands, conns, *target)
	return Poly{Style: Filled, Points: []Point{pt}, Port: pp}, ok
}

// nearestFree returns the candidate closest to target in Manhattan distance
// that no connection ends on. If there is none it logs a warning and returns
// the last candidate with ok set to false.
func nearestFree(pp *PrimitivePort, cands []Point, conns []Connection, target Point) (best Point, ok bool) {
	bestDist := math.Inf(1)
	for _, pt := range cands {
		if occupied(conns, pt) {
			continue
		}
		if d := pt.Manhattan(target); d < bestDist {
			best, bestDist = pt, d
		}
	}
	if math.IsInf(bestDist, 1) {
		Logger().Warn("prim: no free slot on selection port",
			slog.String("port", pp.String()),
			slog.Int("connections", len(conns)))
		return cands[len(cands)-1], false
	}
	return best, true
}

func occupied(conns []Connection, pt Point) bool {
	for _, c := range conns {
		if c.End == pt {
			return true
		}
	}
	return false
}
