package prim

import "fmt"

// Size is the extent of an instance. Width pairs with horizontal edge
// coordinates, height with vertical ones.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) IsZero() bool {
	return sz.Width == 0 && sz.Height == 0
}

// Scale returns the size multiplied by f in both dimensions.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}
