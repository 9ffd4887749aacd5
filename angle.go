package prim

import "math"

// Angles of arcs and ports are integers in tenths of a degree. Arithmetic on
// them wraps at FullCircle and never goes through floating-point degrees.
const (
	FullCircle = 3600
	HalfCircle = 1800
	RightAngle = 900
)

// NormAngle wraps a into [0, 3600).
func NormAngle(a int) int {
	a %= FullCircle
	if a < 0 {
		a += FullCircle
	}
	return a
}

// CosTenths returns the cosine of a tenth-degree angle. Multiples of 90° are
// exact.
func CosTenths(a int) float64 {
	switch NormAngle(a) {
	case 0:
		return 1
	case 900, 2700:
		return 0
	case 1800:
		return -1
	}
	return math.Cos(float64(a) * math.Pi / HalfCircle)
}

// SinTenths returns the sine of a tenth-degree angle. Multiples of 90° are
// exact.
func SinTenths(a int) float64 {
	switch NormAngle(a) {
	case 0, 1800:
		return 0
	case 900:
		return 1
	case 2700:
		return -1
	}
	return math.Sin(float64(a) * math.Pi / HalfCircle)
}

// Dir returns the unit vector at angle a.
func Dir(a int) Vec2 {
	return Vec2{X: CosTenths(a), Y: SinTenths(a)}
}

// AngleOf returns the direction of v in tenths of a degree. Axis-aligned
// vectors map exactly to multiples of 900. The zero vector has angle 0.
func AngleOf(v Vec2) int {
	switch {
	case v.X == 0 && v.Y == 0:
		return 0
	case v.Y == 0:
		if v.X > 0 {
			return 0
		}
		return 1800
	case v.X == 0:
		if v.Y > 0 {
			return 900
		}
		return 2700
	}
	return NormAngle(int(math.Round(math.Atan2(v.Y, v.X) * HalfCircle / math.Pi)))
}
