package prim

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Registry hands out frozen technologies by name. Lookups never block;
// registration replaces the published map as a whole, so readers never see a
// partially registered technology.
type Registry struct {
	mu    sync.Mutex
	techs atomic.Pointer[map[string]*Technology]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	m := map[string]*Technology{}
	r.techs.Store(&m)
	return r
}

// NewBuiltinRegistry returns a registry holding the built-in schematic and
// artwork technologies.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []*Technology{NewSchematics(), NewArtwork()} {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Register publishes t. It must be frozen and its name must be new.
func (r *Registry) Register(t *Technology) error {
	if !t.Frozen() {
		return fmt.Errorf("prim: register %s: %w", t.Name, ErrNotFrozen)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := *r.techs.Load()
	if _, ok := old[t.Name]; ok {
		return fmt.Errorf("prim: register %s: %w", t.Name, ErrDuplicate)
	}
	m := maps.Clone(old)
	m[t.Name] = t
	r.techs.Store(&m)
	return nil
}

// Lookup returns the technology with the given name.
func (r *Registry) Lookup(name string) (*Technology, error) {
	if t, ok := (*r.techs.Load())[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("prim: %q: %w", name, ErrUnknownTechnology)
}

// Names returns the names of the registered technologies, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(*r.techs.Load()))
}
