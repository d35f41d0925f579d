// This file declares the DataProvider capability, the sentinel errors,
// and the functional options shared by providers and the consumer.
package dip

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrNilProvider indicates NewConsumer was handed a nil DataProvider.
// A missing dependency is a configuration error, surfaced at wiring time.
var ErrNilProvider = errors.New("dip: data provider is nil")

// DataProvider is the capability abstraction the consumer depends on.
//
// FetchData retrieves data with an implementation-defined side effect;
// implementations should honor ctx cancellation when fetching can block.
type DataProvider interface {
	FetchData(ctx context.Context) error
}

// Options configures providers and the consumer.
//
// Logger – structured logger used for fetch/process events.
//
//	Default is zap.NewNop() (silent).
type Options struct {
	Logger *zap.Logger
}

// Option represents a functional option for configuring this package's types.
type Option func(*Options)

// WithLogger sets the structured logger used for fetch and process events.
// Passing nil restores the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// applyOptions folds opts over the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
