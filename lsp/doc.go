// Package lsp demonstrates the Liskov Substitution Principle: any value of
// a declared type must be usable wherever that type is expected, without
// the caller knowing or caring which concrete variant it got.
//
// Overview:
//
//   - Bird is the base capability (every bird has a name). Flyer is a
//     separate, narrow capability declared only by birds that actually fly.
//   - Sparrow and Eagle are Birds and Flyers; Penguin is a Bird and a
//     Swimmer, and simply has no Fly method. A Penguin can never be handed
//     to Migrate, so the unsupported state is unrepresentable — the compiler
//     enforces what the legacy design left to run time.
//
// The anti-pattern, kept for contrast:
//
//   - LegacyBird forces Fly onto every bird. LegacyPenguin must implement it
//     and can only fail, so LegacyMigrate works for some flocks and blows up
//     for others — substitution is broken, and the breakage is invisible at
//     compile time.
//
// Error handling:
//
//   - ErrFlightNotSupported — the unsupported-operation failure raised by
//     LegacyPenguin.Fly. It signals a programming error (a type forced into
//     a contract it cannot fulfill), not a condition to retry. The
//     refactored API has no equivalent: no call path can produce it.
//
// API reference:
//
//	func Migrate(flock ...Flyer) []Flight
//	func LegacyMigrate(flock ...LegacyBird) ([]Flight, error)
package lsp
