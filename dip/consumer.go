package dip

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Consumer is the high-level policy: it processes whatever its injected
// DataProvider fetches, without ever naming a concrete provider.
type Consumer struct {
	provider DataProvider
	log      *zap.Logger

	mu        sync.Mutex
	processed int
}

// NewConsumer wires a Consumer to the given provider.
//
// The provider is accepted exclusively here — constructor injection — and
// a nil provider fails fast with ErrNilProvider.
func NewConsumer(p DataProvider, opts ...Option) (*Consumer, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	o := applyOptions(opts)

	return &Consumer{provider: p, log: o.Logger}, nil
}

// ProcessData invokes the injected provider's FetchData, then performs the
// follow-on step: the batch counter advances and the event is logged.
func (c *Consumer) ProcessData(ctx context.Context) error {
	if err := c.provider.FetchData(ctx); err != nil {
		return fmt.Errorf("dip: fetch data: %w", err)
	}

	c.mu.Lock()
	c.processed++
	batch := c.processed
	c.mu.Unlock()

	c.log.Info("data processed", zap.Int("batch", batch))

	return nil
}

// Processed returns how many batches completed.
func (c *Consumer) Processed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.processed
}
