package ocp

// AreaOf returns the area of a single shape via polymorphic dispatch.
//
// It exists so the entry point reads symmetrically with LegacyAreaOf: the
// open/closed version never inspects the concrete variant.
func AreaOf(s Shape) float64 {
	return s.Area()
}

// SumAreas returns the total area of all given shapes.
//
// SumAreas is closed against modification: a new Shape variant participates
// the moment it implements the capability, with no edit here.
// Complexity: O(n) over the number of shapes.
func SumAreas(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}

	return total
}
