// Package ocp demonstrates the Open/Closed Principle: software entities
// should be open for extension but closed for modification.
//
// Overview:
//
//   - The Shape capability declares exactly what the area machinery needs:
//     Area() and Kind(). Every concrete variant (Circle, Square, Rectangle,
//     Triangle) carries its own computation.
//   - SumAreas dispatches polymorphically. Adding a new variant never touches
//     SumAreas — the entry point is closed against modification.
//   - A shape Registry plus ParseCatalog extends the idea to data: a YAML
//     catalog of shapes is decoded through registered factories, so a new
//     kind is a RegisterKind call, not an edit to the parser.
//
// The anti-pattern, kept for contrast:
//
//   - LegacyAreaOf inspects concrete variants with a type switch. Every new
//     shape forces an edit to the switch; anything the switch was never
//     taught yields ErrUnknownKind at run time.
//
// Error handling (sentinel errors):
//
//   - ErrUnknownKind:   a catalog entry (or legacy value) names a kind no
//     factory was registered for.
//   - ErrBadDimension:  a shape dimension is zero or negative.
//   - ErrDuplicateKind: RegisterKind called twice for the same kind.
//
// API reference:
//
//	func SumAreas(shapes ...Shape) float64
//	func AreaOf(s Shape) float64
//	func LegacyAreaOf(v any) (float64, error)
//	func NewRegistry() *Registry
//	func (r *Registry) RegisterKind(kind string, f Factory) error
//	func (r *Registry) ParseCatalog(data []byte) ([]Shape, error)
//	func RegisterKind(kind string, f Factory) error   // default registry
//	func ParseCatalog(data []byte) ([]Shape, error)   // default registry
//
// Example catalog:
//
//	shapes:
//	  - kind: circle
//	    radius: 2
//	  - kind: square
//	    side: 3
//
// Thread safety:
//
//   - Registry is safe for concurrent RegisterKind/ParseCatalog calls.
//   - Shape values are immutable; share them freely.
package ocp
