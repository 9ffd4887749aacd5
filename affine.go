package prim

// Affine maps node-relative coordinates to cell coordinates. The
// coefficients form the matrix
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// applied to column vectors, so that a.Mul(b) applies b first.
type Affine struct {
	A, B, C, D, E, F float64
}

var (
	// Identity leaves points where they are.
	Identity = Affine{A: 1, D: 1}
	// FlipX negates x.
	FlipX = Affine{A: -1, D: 1}
)

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{A: x, D: y}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{A: 1, D: 1, E: v.X, F: v.Y}
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		A: aff.A*o.A + aff.C*o.B,
		B: aff.B*o.A + aff.D*o.B,
		C: aff.A*o.C + aff.C*o.D,
		D: aff.B*o.C + aff.D*o.D,
		E: aff.A*o.E + aff.C*o.F + aff.E,
		F: aff.B*o.E + aff.D*o.F + aff.F,
	}
}

// ThenTranslate returns aff followed by a move by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.E += v.X
	aff.F += v.Y
	return aff
}

// Invert returns the inverse transform. Placement transforms are always
// invertible; a singular aff yields NaNs.
func (aff Affine) Invert() Affine {
	inv := 1 / (aff.A*aff.D - aff.B*aff.C)
	return Affine{
		A: aff.D * inv,
		B: -aff.B * inv,
		C: -aff.C * inv,
		D: aff.A * inv,
		E: (aff.C*aff.F - aff.D*aff.E) * inv,
		F: (aff.B*aff.E - aff.A*aff.F) * inv,
	}
}

// TransformRectBoundingBox returns the bounds of r after transformation. For
// the quarter turns and mirrors of an [Orientation] this is the transformed
// rectangle itself.
func (aff Affine) TransformRectBoundingBox(r Rect) Rect {
	out := EmptyRect
	for _, c := range r.Corners() {
		out = out.UnionPoint(c.Transform(aff))
	}
	return out
}
