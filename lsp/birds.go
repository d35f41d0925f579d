package lsp

// Sparrow is a small bird; a Bird and a Flyer.
type Sparrow struct{}

// Name returns "sparrow".
func (Sparrow) Name() string { return "sparrow" }

// Fly returns a low, quick flight.
func (Sparrow) Fly() Flight { return Flight{AltitudeMeters: 50, SpeedKmh: 38} }

// Eagle is a large raptor; a Bird and a Flyer.
type Eagle struct{}

// Name returns "eagle".
func (Eagle) Name() string { return "eagle" }

// Fly returns a high, fast flight.
func (Eagle) Fly() Flight { return Flight{AltitudeMeters: 3000, SpeedKmh: 120} }

// Penguin is a flightless bird; a Bird and a Swimmer — and deliberately
// not a Flyer. The capability is absent from the type, so no call path
// can ask a penguin to fly.
type Penguin struct{}

// Name returns "penguin".
func (Penguin) Name() string { return "penguin" }

// Swim returns a deep dive.
func (Penguin) Swim() Dive { return Dive{DepthMeters: 150} }

// Compile-time capability assertions.
var (
	_ Flyer   = Sparrow{}
	_ Flyer   = Eagle{}
	_ Swimmer = Penguin{}
)

// Migrate sends every flyer in the flock aloft and reports each flight.
//
// Because the parameter type is Flyer, every member is substitutable by
// construction: there is no error path, and none is needed.
func Migrate(flock ...Flyer) []Flight {
	flights := make([]Flight, 0, len(flock))
	for _, f := range flock {
		flights = append(flights, f.Fly())
	}

	return flights
}
