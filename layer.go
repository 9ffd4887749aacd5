package prim

// LayerFunction describes what a layer is used for.
type LayerFunction uint8

const (
	LayerUnknown LayerFunction = iota
	LayerArt
	LayerWire
	LayerBus
	LayerText
)

var layerFunctionNames = [...]string{"unknown", "art", "wire", "bus", "text"}

func (f LayerFunction) String() string {
	if int(f) < len(layerFunctionNames) {
		return layerFunctionNames[f]
	}
	return "invalid"
}

// Graphics is the appearance of a layer.
type Graphics struct {
	// Color is a palette index; 0 means the default.
	Color int
	// Pattern holds patternRows rows of a fill stipple, or nothing for a solid fill.
	Pattern []int
	Filled  bool
}

const patternRows = 16

// Layer is a drawing layer of a technology. Layers are created once when a
// technology is built and are shared by every prototype that draws on them.
type Layer struct {
	Name     string `validate:"required"`
	Function LayerFunction
	Graphics Graphics
}

func (l *Layer) String() string {
	return l.Name
}
