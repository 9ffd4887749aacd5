package prim

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
)

var (
	// ErrFrozen is the cause of the panic raised by mutating a frozen
	// technology.
	ErrFrozen = errors.New("technology is frozen")
	// ErrNotFrozen is returned when a technology is published before it is
	// frozen.
	ErrNotFrozen = errors.New("technology is not frozen")
	// ErrDuplicate is returned when a name is already taken.
	ErrDuplicate = errors.New("duplicate name")
	// ErrUnknownTechnology is returned by lookups of unregistered technologies.
	ErrUnknownTechnology = errors.New("unknown technology")
	// ErrInvalid wraps the problems found when freezing a technology.
	ErrInvalid = errors.New("invalid technology")
)

// Technology is a bundle of layers, arc prototypes and node prototypes.
//
// A technology is built by one goroutine with AddLayer, AddArc and AddNode,
// then frozen. After Freeze it is read-only and may be shared freely.
type Technology struct {
	Name        string `validate:"required"`
	Description string

	layers []*Layer
	arcs   []*ArcProto
	nodes  []*PrimitiveNode

	layerByName map[string]*Layer
	arcByName   map[string]*ArcProto
	nodeByName  map[string]*PrimitiveNode

	frozen atomic.Bool
}

// NewTechnology returns an empty technology.
func NewTechnology(name, description string) *Technology {
	return &Technology{
		Name:        name,
		Description: description,
		layerByName: make(map[string]*Layer),
		arcByName:   make(map[string]*ArcProto),
		nodeByName:  make(map[string]*PrimitiveNode),
	}
}

func (t *Technology) String() string {
	return t.Name
}

func (t *Technology) mutate(what string) {
	if t.frozen.Load() {
		panic(fmt.Errorf("prim: %s in %s: %w", what, t.Name, ErrFrozen))
	}
}

// AddLayer adds a layer. It panics if t is frozen.
func (t *Technology) AddLayer(l *Layer) error {
	t.mutate("add layer " + l.Name)
	if _, ok := t.layerByName[l.Name]; ok {
		return fmt.Errorf("prim: layer %s in %s: %w", l.Name, t.Name, ErrDuplicate)
	}
	t.layers = append(t.layers, l)
	t.layerByName[l.Name] = l
	return nil
}

// AddArc adds an arc prototype and makes t its owner. It panics if t is
// frozen.
func (t *Technology) AddArc(ap *ArcProto) error {
	t.mutate("add arc " + ap.Name)
	if _, ok := t.arcByName[ap.Name]; ok {
		return fmt.Errorf("prim: arc %s in %s: %w", ap.Name, t.Name, ErrDuplicate)
	}
	ap.Tech = t
	t.arcs = append(t.arcs, ap)
	t.arcByName[ap.Name] = ap
	return nil
}

// AddNode adds a node prototype, making t its owner and np the parent of its
// ports. It panics if t is frozen.
func (t *Technology) AddNode(np *PrimitiveNode) error {
	t.mutate("add node " + np.Name)
	if _, ok := t.nodeByName[np.Name]; ok {
		return fmt.Errorf("prim: node %s in %s: %w", np.Name, t.Name, ErrDuplicate)
	}
	np.Tech = t
	for _, pp := range np.Ports {
		pp.Parent = np
	}
	t.nodes = append(t.nodes, np)
	t.nodeByName[np.Name] = np
	return nil
}

// Freeze validates t and makes it read-only. Freezing a frozen technology
// does nothing.
func (t *Technology) Freeze() error {
	if t.frozen.Load() {
		return nil
	}
	var errs []error
	if err := validate.Struct(t); err != nil {
		errs = append(errs, formatValidationError("technology "+t.Name, err))
	}
	for _, l := range t.layers {
		if err := validate.Struct(l); err != nil {
			errs = append(errs, formatValidationError("layer "+l.Name, err))
		}
	}
	for _, ap := range t.arcs {
		if err := validate.Struct(ap); err != nil {
			errs = append(errs, formatValidationError("arc "+ap.Name, err))
		}
	}
	for _, np := range t.nodes {
		if err := validate.Struct(np); err != nil {
			errs = append(errs, formatValidationError("node "+np.Name, err))
		}
		for _, err := range t.checkOwnership(np) {
			errs = append(errs, fmt.Errorf("node %s: %w", np.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("prim: freeze %s: %w", t.Name, err)
	}
	t.frozen.Store(true)
	return nil
}

// checkOwnership reports layers and arcs referenced by np that belong to
// another technology.
func (t *Technology) checkOwnership(np *PrimitiveNode) []error {
	var errs []error
	check := func(tmpl ShapeTemplate) {
		if tmpl.Layer != nil && t.layerByName[tmpl.Layer.Name] != tmpl.Layer {
			errs = append(errs, fmt.Errorf("layer %s is not part of %s", tmpl.Layer.Name, t.Name))
		}
	}
	for _, tmpl := range np.Templates {
		check(tmpl)
	}
	if np.Grow != nil {
		check(*np.Grow)
	}
	if np.Family != nil {
		for _, v := range np.Family.Alternatives {
			for _, tmpl := range v.Templates {
				check(tmpl)
			}
		}
	}
	for _, pp := range np.Ports {
		for _, ap := range pp.ArcKinds {
			if ap.Tech != t {
				errs = append(errs, fmt.Errorf("port %s accepts arc %v from another technology", pp.Name, ap))
			}
		}
	}
	return errs
}

// Frozen reports whether Freeze has succeeded.
func (t *Technology) Frozen() bool {
	return t.frozen.Load()
}

// Layer returns the layer with the given name, or nil.
func (t *Technology) Layer(name string) *Layer { return t.layerByName[name] }

// Arc returns the arc prototype with the given name, or nil.
func (t *Technology) Arc(name string) *ArcProto { return t.arcByName[name] }

// Node returns the node prototype with the given name, or nil.
func (t *Technology) Node(name string) *PrimitiveNode { return t.nodeByName[name] }

// Layers yields the layers in the order they were added.
func (t *Technology) Layers() iter.Seq[*Layer] { return slices.Values(t.layers) }

// Arcs yields the arc prototypes in the order they were added.
func (t *Technology) Arcs() iter.Seq[*ArcProto] { return slices.Values(t.arcs) }

// Nodes yields the node prototypes in the order they were added.
func (t *Technology) Nodes() iter.Seq[*PrimitiveNode] { return slices.Values(t.nodes) }
