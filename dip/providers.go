package dip

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StaticProvider serves a fixed in-memory record set. Its side effect is a
// fetch counter, observable via Fetches.
type StaticProvider struct {
	mu      sync.Mutex
	records []string
	fetches int
	log     *zap.Logger
}

// NewStaticProvider returns a provider over the given records.
func NewStaticProvider(records ...string) *StaticProvider {
	return &StaticProvider{records: records, log: zap.NewNop()}
}

// WithOptions applies functional options (currently the logger) and
// returns the provider for chaining.
func (p *StaticProvider) WithOptions(opts ...Option) *StaticProvider {
	o := applyOptions(opts)
	p.mu.Lock()
	p.log = o.Logger
	p.mu.Unlock()

	return p
}

// FetchData marks the record set as fetched. It never blocks, but still
// refuses to do work on an already-cancelled context.
func (p *StaticProvider) FetchData(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	p.fetches++
	n, lg := len(p.records), p.log
	p.mu.Unlock()

	lg.Debug("static fetch", zap.Int("records", n))

	return nil
}

// Fetches returns how many times FetchData completed.
func (p *StaticProvider) Fetches() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.fetches
}

// Records returns a copy of the record set.
func (p *StaticProvider) Records() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.records...)
}

// DelayProvider simulates a slow remote source: FetchData blocks for a
// fixed delay, honoring context cancellation.
type DelayProvider struct {
	delay time.Duration
	log   *zap.Logger
}

// NewDelayProvider returns a provider that takes d per fetch.
func NewDelayProvider(d time.Duration, opts ...Option) *DelayProvider {
	o := applyOptions(opts)

	return &DelayProvider{delay: d, log: o.Logger}
}

// FetchData blocks for the configured delay or until ctx is done,
// whichever comes first.
func (p *DelayProvider) FetchData(ctx context.Context) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.log.Warn("delayed fetch cancelled", zap.Error(ctx.Err()))

		return ctx.Err()
	case <-timer.C:
		p.log.Debug("delayed fetch complete", zap.Duration("delay", p.delay))

		return nil
	}
}

// Compile-time capability assertions.
var (
	_ DataProvider = (*StaticProvider)(nil)
	_ DataProvider = (*DelayProvider)(nil)
)
