package once

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent function calls with the same key. Only the
// first caller executes the function; others wait and receive the same
// result. Unlike [Value], completed calls do not stay cached: once a
// call finishes, the next call for that key executes again.
type Group[T any] struct {
	group singleflight.Group
}

// NewGroup creates a new Group for type T.
func NewGroup[T any]() *Group[T] {
	return &Group[T]{}
}

// Do executes fn for the given key, deduplicating concurrent calls. If a
// call is already in-flight for this key, Do blocks until it completes and
// returns the same result.
func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error) {
	v, err, _ := g.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Forget drops the in-flight record for key, so a subsequent Do starts a
// fresh execution instead of joining the current one.
func (g *Group[T]) Forget(key string) {
	g.group.Forget(key)
}
