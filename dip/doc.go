// Package dip demonstrates the Dependency Inversion Principle: high-level
// policy depends on an abstraction, never on a concrete low-level detail.
//
// Overview:
//
//   - DataProvider is the capability abstraction: one operation, FetchData,
//     whose effect is implementation-defined.
//   - StaticProvider and DelayProvider are concrete providers; both satisfy
//     the abstraction polymorphically. DelayProvider honors context
//     cancellation, simulating a slow remote source.
//   - Consumer accepts its provider exclusively through NewConsumer
//     (constructor injection) and never constructs one itself. ProcessData
//     invokes the injected provider's FetchData, then performs the follow-on
//     step (records the processed batch and logs it).
//
// The anti-pattern, kept for contrast:
//
//   - LegacyConsumer constructs its own StaticProvider internally. It cannot
//     be redirected to another source, and tests cannot substitute a double.
//
// Error handling (sentinel errors):
//
//   - ErrNilProvider — NewConsumer fails fast when handed a nil provider.
//     A missing dependency is a configuration error, detected at wiring
//     time rather than on first use.
//
// Options:
//
//   - WithLogger(*zap.Logger) — structured logging for providers and the
//     consumer. Defaults to zap.NewNop(); a library stays quiet unless the
//     caller opts in.
//
// API reference:
//
//	func NewConsumer(p DataProvider, opts ...Option) (*Consumer, error)
//	func (c *Consumer) ProcessData(ctx context.Context) error
//	func (c *Consumer) Processed() int
//	func NewStaticProvider(records ...string) *StaticProvider
//	func NewDelayProvider(d time.Duration, opts ...Option) *DelayProvider
//
// Thread safety:
//
//   - Consumer and StaticProvider are safe for concurrent use; counters are
//     guarded by a mutex.
package dip
