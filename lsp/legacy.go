package lsp

// LegacyBird is the fat base contract of the anti-pattern: every bird must
// expose Fly, whether or not it can fly.
type LegacyBird interface {
	Name() string
	Fly() (Flight, error)
}

// LegacySparrow flies; its Fly never fails.
type LegacySparrow struct{}

// Name returns "sparrow".
func (LegacySparrow) Name() string { return "sparrow" }

// Fly returns a low, quick flight.
func (LegacySparrow) Fly() (Flight, error) {
	return Flight{AltitudeMeters: 50, SpeedKmh: 38}, nil
}

// LegacyPenguin was forced into the LegacyBird contract and can only fail:
// its Fly always returns ErrFlightNotSupported.
type LegacyPenguin struct{}

// Name returns "penguin".
func (LegacyPenguin) Name() string { return "penguin" }

// Fly signals the unsupported-operation failure; penguins do not fly.
func (LegacyPenguin) Fly() (Flight, error) {
	return Flight{}, ErrFlightNotSupported
}

// LegacyMigrate sends a legacy flock aloft. It works for some flocks and
// fails for others depending on which concrete variants were substituted
// in — the substitution breakage the refactored Migrate cannot exhibit.
func LegacyMigrate(flock ...LegacyBird) ([]Flight, error) {
	flights := make([]Flight, 0, len(flock))
	for _, b := range flock {
		fl, err := b.Fly()
		if err != nil {
			return nil, err
		}
		flights = append(flights, fl)
	}

	return flights, nil
}
