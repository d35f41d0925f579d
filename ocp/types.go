// This file declares the Shape capability, the concrete shape variants,
// and the sentinel errors shared by the catalog and legacy helpers.
package ocp

import (
	"errors"
	"math"
)

// Sentinel errors for shape construction and catalog parsing.
var (
	// ErrUnknownKind indicates a shape kind no factory was registered for.
	ErrUnknownKind = errors.New("ocp: unknown shape kind")

	// ErrBadDimension indicates a zero or negative shape dimension.
	ErrBadDimension = errors.New("ocp: shape dimension must be positive")

	// ErrDuplicateKind indicates RegisterKind was called twice for one kind.
	ErrDuplicateKind = errors.New("ocp: shape kind already registered")
)

// Shape is the capability every area-bearing variant satisfies.
//
// Area returns the surface area; Kind returns a stable lowercase name
// (used by the catalog and for display).
type Shape interface {
	Area() float64
	Kind() string
}

// Circle is a shape defined by its radius.
type Circle struct {
	Radius float64
}

// Area returns π·r².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Kind returns "circle".
func (c Circle) Kind() string { return "circle" }

// Square is a shape defined by its side length.
type Square struct {
	Side float64
}

// Area returns side².
func (s Square) Area() float64 { return s.Side * s.Side }

// Kind returns "square".
func (s Square) Kind() string { return "square" }

// Rectangle is a shape defined by width and height.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns width·height.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Kind returns "rectangle".
func (r Rectangle) Kind() string { return "rectangle" }

// Triangle is a shape defined by base and height.
type Triangle struct {
	Base   float64
	Height float64
}

// Area returns base·height/2.
func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }

// Kind returns "triangle".
func (t Triangle) Kind() string { return "triangle" }
