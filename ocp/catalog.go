// This file implements the YAML shape catalog: a Registry of kind→factory
// bindings and ParseCatalog, which decodes a catalog document through the
// registered factories. Extension is a RegisterKind call, never a parser edit.
package ocp

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// CatalogEntry is one decoded catalog item: a kind plus its dimensions.
//
// Dimensions collects every scalar besides kind, so factories for new shape
// kinds can read whatever fields they need without schema changes here.
type CatalogEntry struct {
	Kind       string             `yaml:"kind"`
	Dimensions map[string]float64 `yaml:",inline"`
}

// Dim returns the named dimension, or ErrBadDimension when it is absent,
// zero or negative. Factories use it to validate their inputs uniformly.
func (e CatalogEntry) Dim(name string) (float64, error) {
	v, ok := e.Dimensions[name]
	if !ok || v <= 0 {
		return 0, fmt.Errorf("%w: %s %q=%v", ErrBadDimension, e.Kind, name, v)
	}

	return v, nil
}

// Factory builds one Shape from a decoded catalog entry.
type Factory func(e CatalogEntry) (Shape, error)

// Registry maps shape kinds to factories.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a Registry pre-populated with the built-in kinds
// (circle, square, rectangle, triangle).
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	// Built-ins never collide in a fresh registry; ignore the error.
	_ = r.RegisterKind("circle", func(e CatalogEntry) (Shape, error) {
		radius, err := e.Dim("radius")
		if err != nil {
			return nil, err
		}

		return Circle{Radius: radius}, nil
	})
	_ = r.RegisterKind("square", func(e CatalogEntry) (Shape, error) {
		side, err := e.Dim("side")
		if err != nil {
			return nil, err
		}

		return Square{Side: side}, nil
	})
	_ = r.RegisterKind("rectangle", func(e CatalogEntry) (Shape, error) {
		width, err := e.Dim("width")
		if err != nil {
			return nil, err
		}
		height, err := e.Dim("height")
		if err != nil {
			return nil, err
		}

		return Rectangle{Width: width, Height: height}, nil
	})
	_ = r.RegisterKind("triangle", func(e CatalogEntry) (Shape, error) {
		base, err := e.Dim("base")
		if err != nil {
			return nil, err
		}
		height, err := e.Dim("height")
		if err != nil {
			return nil, err
		}

		return Triangle{Base: base, Height: height}, nil
	})

	return r
}

// RegisterKind binds kind to factory.
// Returns ErrDuplicateKind if the kind is already bound.
func (r *Registry) RegisterKind(kind string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.factories[kind] = f

	return nil
}

// catalogDoc mirrors the YAML document root.
type catalogDoc struct {
	Shapes []CatalogEntry `yaml:"shapes"`
}

// ParseCatalog decodes a YAML shape catalog and builds each entry through
// its registered factory.
//
// Returns ErrUnknownKind for an entry whose kind has no factory, or the
// factory's own error (typically wrapping ErrBadDimension).
func (r *Registry) ParseCatalog(data []byte) ([]Shape, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ocp: decode catalog: %w", err)
	}

	shapes := make([]Shape, 0, len(doc.Shapes))
	for i, entry := range doc.Shapes {
		r.mu.RLock()
		f, ok := r.factories[entry.Kind]
		r.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %q (entry %d)", ErrUnknownKind, entry.Kind, i)
		}
		s, err := f(entry)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}

	return shapes, nil
}

// defaultRegistry backs the package-level RegisterKind and ParseCatalog.
var defaultRegistry = NewRegistry()

// RegisterKind binds kind to factory in the default registry.
func RegisterKind(kind string, f Factory) error {
	return defaultRegistry.RegisterKind(kind, f)
}

// ParseCatalog decodes a YAML shape catalog using the default registry.
func ParseCatalog(data []byte) ([]Shape, error) {
	return defaultRegistry.ParseCatalog(data)
}
