package memo

import (
	"fmt"

	"github.com/hacagahasanli/hh-toolkit-utils/core/cache"
	"github.com/hacagahasanli/hh-toolkit-utils/internal/argkey"
)

// KeyFunc derives the cache key for an argument.
type KeyFunc[T any] func(arg T) (string, error)

// Key derives a deterministic cache key from arbitrary arguments. It is
// order-sensitive and type-distinguishing (1 and "1" yield different keys).
// Useful for building a custom [KeyFunc] over multiple closed-over values.
func Key(args ...any) (string, error) {
	return argkey.Of(args...)
}

// Memoizer caches fn's results keyed by its argument. Entries never expire
// unless the backing cache evicts them or they are removed explicitly.
// Safe for concurrent use; note that concurrent calls with the same key may
// each invoke fn on a cold cache. Use the once package when exactly-one
// execution matters.
type Memoizer[T, V any] struct {
	fn      func(T) (V, error)
	keyFn   KeyFunc[T]
	store   cache.Cache
	metrics Metrics
}

// New creates a Memoizer around fn. The default key is a canonical
// serialization of the argument (see [Key]); the default backing store is
// an unbounded [cache.Map].
func New[T, V any](fn func(T) (V, error), opts ...Option[T]) (*Memoizer[T, V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	cfg := newConfig[T](opts...)
	return &Memoizer[T, V]{
		fn:      fn,
		keyFn:   cfg.keyFn,
		store:   cfg.store,
		metrics: cfg.metrics,
	}, nil
}

// Call returns the cached result for arg, invoking fn on a miss. Errors
// returned by fn are not cached: the next Call with the same key invokes
// fn again.
func (m *Memoizer[T, V]) Call(arg T) (V, error) {
	var zero V

	key, err := m.keyFn(arg)
	if err != nil {
		return zero, fmt.Errorf("memo: derive key: %w", err)
	}

	if v, ok := m.store.Get(key); ok {
		if typed, ok := v.(V); ok {
			m.metrics.Hit()
			return typed, nil
		}
	}

	m.metrics.Miss()
	v, err := m.fn(arg)
	if err != nil {
		return zero, err
	}
	m.store.Put(key, v)
	return v, nil
}

// Cache exposes the backing store for external inspection.
func (m *Memoizer[T, V]) Cache() cache.Cache { return m.store }

// Forget drops the cached entry for arg, if any.
func (m *Memoizer[T, V]) Forget(arg T) error {
	key, err := m.keyFn(arg)
	if err != nil {
		return fmt.Errorf("memo: derive key: %w", err)
	}
	m.store.Delete(key)
	return nil
}

// Purge drops all cached entries.
func (m *Memoizer[T, V]) Purge() {
	m.store.Clear()
}
