// This file declares the bird capabilities (Bird, Flyer, Swimmer), their
// result types, and the sentinel error used by the legacy design.
package lsp

import "errors"

// ErrFlightNotSupported is the unsupported-operation failure raised by
// legacy bird variants forced to expose Fly without being able to fly.
// The refactored capabilities cannot produce it.
var ErrFlightNotSupported = errors.New("lsp: flight not supported")

// Bird is the base capability shared by every bird.
type Bird interface {
	Name() string
}

// Flight describes one completed flight.
type Flight struct {
	// AltitudeMeters is the cruising altitude reached.
	AltitudeMeters float64

	// SpeedKmh is the cruising speed.
	SpeedKmh float64
}

// Flyer is the narrow flight capability, declared only by birds that fly.
type Flyer interface {
	Bird
	Fly() Flight
}

// Dive describes one completed dive.
type Dive struct {
	// DepthMeters is the depth reached under water.
	DepthMeters float64
}

// Swimmer is the narrow swimming capability.
type Swimmer interface {
	Bird
	Swim() Dive
}
