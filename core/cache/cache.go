package cache

import "time"

type PutOptions struct {
	TTL time.Duration
}

type PutOption func(*PutOptions)

func WithTTL(ttl time.Duration) PutOption {
	return func(o *PutOptions) {
		o.TTL = ttl
	}
}

// Cache is a string-keyed store. All implementations in this package are
// safe for concurrent use.
type Cache interface {
	Get(key string) (any, bool)
	Put(key string, val any, opts ...PutOption)
	Delete(key string)
	// Clear removes all entries.
	Clear()
	// Len reports the number of stored entries, including entries whose
	// TTL has elapsed but which have not been lazily evicted yet.
	Len() int
}

// TypedCache is a type-safe view over a Cache.
type TypedCache[T any] interface {
	Put(key string, val T, opts ...PutOption)
	Get(key string) (T, bool)
	Delete(key string)
	Clear()
	Len() int
}

type typedCache[T any] struct {
	c Cache
}

// NewTyped wraps c with compile-time type safety. Get reports false for
// entries that are present but hold a different type.
func NewTyped[T any](c Cache) TypedCache[T] { return &typedCache[T]{c: c} }

func (t *typedCache[T]) Get(key string) (out T, ok bool) {
	var v any
	v, ok = t.c.Get(key)
	if !ok {
		return out, false
	}

	if out, ok = v.(T); !ok {
		return out, false
	}
	return
}

func (t *typedCache[T]) Put(key string, val T, opts ...PutOption) {
	t.c.Put(key, val, opts...)
}

func (t *typedCache[T]) Delete(key string) {
	t.c.Delete(key)
}

func (t *typedCache[T]) Clear() {
	t.c.Clear()
}

func (t *typedCache[T]) Len() int {
	return t.c.Len()
}

var _ TypedCache[any] = (*typedCache[any])(nil)
