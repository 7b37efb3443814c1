// Package memo caches function results keyed by their arguments.
//
// A [Memoizer] wraps a func(T) (V, error). On the first call with a given
// key it invokes the function and stores the result; later calls with the
// same key return the stored result without invoking the function again.
// Results never expire on their own; the backing cache is exposed for
// inspection and clearing.
//
//	m, _ := memo.New(func(id string) (*Profile, error) {
//	    return fetchProfile(id)
//	})
//
//	p, err := m.Call("u-1") // fetches
//	p, err = m.Call("u-1")  // cached
//
// The default key is a canonical, type-distinguishing serialization of the
// argument. For argument types without a meaningful serialization, supply
// [WithKey]. Bound memory with [WithCache] and a [cache.LRU].
//
// Memoization is unsuitable for functions whose side effects matter, since
// calls after the first are suppressed entirely. Errors are not cached.
package memo
