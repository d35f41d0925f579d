package ocp

// LegacyAreaOf computes an area by inspecting the concrete variant with a
// type switch — the Open/Closed anti-pattern kept for contrast.
//
// Every new shape forces an edit to this switch; a value the switch was
// never taught (including any Shape added after this file was written)
// yields ErrUnknownKind at run time instead of failing to compile.
func LegacyAreaOf(v any) (float64, error) {
	switch s := v.(type) {
	case Circle:
		return s.Area(), nil
	case Square:
		return s.Area(), nil
	case Rectangle:
		return s.Area(), nil
	default:
		return 0, ErrUnknownKind
	}
}
