package dip

import (
	"context"
	"fmt"
)

// LegacyConsumer is the anti-pattern: it constructs its concrete provider
// internally, so the dependency points the wrong way. No caller — test or
// otherwise — can redirect it to another source.
type LegacyConsumer struct {
	provider  *StaticProvider // hardwired concrete detail
	processed int
}

// NewLegacyConsumer builds the consumer and, inside it, the one provider
// it will ever use.
func NewLegacyConsumer() *LegacyConsumer {
	return &LegacyConsumer{provider: NewStaticProvider("alpha", "beta")}
}

// ProcessData fetches from the hardwired provider, then counts the batch.
func (c *LegacyConsumer) ProcessData(ctx context.Context) error {
	if err := c.provider.FetchData(ctx); err != nil {
		return fmt.Errorf("dip: fetch data: %w", err)
	}
	c.processed++

	return nil
}

// Processed returns how many batches completed.
func (c *LegacyConsumer) Processed() int { return c.processed }
