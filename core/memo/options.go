package memo

import (
	"errors"

	"github.com/hacagahasanli/hh-toolkit-utils/core/cache"
	"github.com/hacagahasanli/hh-toolkit-utils/internal/argkey"
)

// ErrNilFunc is returned when no function is supplied.
var ErrNilFunc = errors.New("memo: fn must not be nil")

// Option configures a Memoizer.
type Option[T any] func(*config[T])

type config[T any] struct {
	keyFn   KeyFunc[T]
	store   cache.Cache
	metrics Metrics
}

func newConfig[T any](opts ...Option[T]) *config[T] {
	cfg := &config[T]{
		keyFn:   func(arg T) (string, error) { return argkey.Of(arg) },
		store:   cache.NewMap(),
		metrics: NopMetrics(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithKey sets an explicit key-derivation function. Supply one whenever the
// argument type has an identity the canonical serialization cannot capture
// (pointers, unexported fields, interfaces).
func WithKey[T any](keyFn KeyFunc[T]) Option[T] {
	return func(c *config[T]) {
		if keyFn != nil {
			c.keyFn = keyFn
		}
	}
}

// WithCache sets the backing store, e.g. a bounded [cache.LRU].
func WithCache[T any](store cache.Cache) Option[T] {
	return func(c *config[T]) {
		if store != nil {
			c.store = store
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics[T any](m Metrics) Option[T] {
	return func(c *config[T]) {
		if m != nil {
			c.metrics = m
		}
	}
}
