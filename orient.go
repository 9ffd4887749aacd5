package prim

import (
	"fmt"
	"strings"
)

// Orientation is one of the eight Manhattan orientations of an instance: a
// rotation by a multiple of 90° counterclockwise, optionally preceded by a
// mirror in X.
type Orientation struct {
	// Quarter is the number of counterclockwise quarter turns, 0 to 3.
	Quarter int
	// MirrorX negates x before rotating.
	MirrorX bool
}

var (
	R0   = Orientation{}
	R90  = Orientation{Quarter: 1}
	R180 = Orientation{Quarter: 2}
	R270 = Orientation{Quarter: 3}
	MX   = Orientation{MirrorX: true}
	MY   = Orientation{Quarter: 2, MirrorX: true}
)

// quarterTurns holds exact rotation matrices so that rotated points compare
// exactly; math.Sincos(π/2) is not exactly (1, 0).
var quarterTurns = [4]Affine{
	{1, 0, 0, 1, 0, 0},
	{0, 1, -1, 0, 0, 0},
	{-1, 0, 0, -1, 0, 0},
	{0, -1, 1, 0, 0, 0},
}

// Affine returns the linear part of the orientation.
func (o Orientation) Affine() Affine {
	aff := quarterTurns[((o.Quarter%4)+4)%4]
	if o.MirrorX {
		aff = aff.Mul(FlipX)
	}
	return aff
}

// Mirrored reports whether the orientation reverses the sense of rotation.
func (o Orientation) Mirrored() bool {
	return o.MirrorX
}

func (o Orientation) String() string {
	q := ((o.Quarter % 4) + 4) % 4
	if o.MirrorX {
		if q == 2 {
			return "MY"
		}
		if q == 0 {
			return "MX"
		}
		return fmt.Sprintf("MXR%d", q*90)
	}
	return fmt.Sprintf("R%d", q*90)
}

// ParseOrientation parses the names produced by [Orientation.String].
func ParseOrientation(s string) (Orientation, error) {
	var o Orientation
	u := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case u == "" || u == "R0":
		return R0, nil
	case u == "MX":
		return MX, nil
	case u == "MY":
		return MY, nil
	case strings.HasPrefix(u, "MXR"):
		o.MirrorX = true
		u = u[2:]
	}
	switch u {
	case "R0":
	case "R90":
		o.Quarter = 1
	case "R180":
		o.Quarter = 2
	case "R270":
		o.Quarter = 3
	default:
		return Orientation{}, fmt.Errorf("prim: unknown orientation %q", s)
	}
	return o, nil
}
