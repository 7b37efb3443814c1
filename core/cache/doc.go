// Package cache provides a simple key-value cache interface with map and
// LRU backed implementations, optional TTL, and a type-safe wrapper.
//
// The package defines two interfaces:
//
//   - [Cache]: Untyped cache storing values as any
//   - [TypedCache]: Generic type-safe wrapper via [NewTyped]
//
// # Implementations
//
// [Map] is an unbounded in-memory store. Entries are never evicted unless
// deleted explicitly or expired via TTL. This is the default backing store
// for the memo package.
//
//	c := cache.NewMap()
//	c.Put("key", value)
//	if val, ok := c.Get("key"); ok {
//	    // use val
//	}
//
// [LRU] is a bounded store with least-recently-used eviction. It runs a
// background goroutine that owns the cache state, ensuring thread safety
// without external locking.
//
//	c := cache.NewLRU(cache.LRUOpts{Size: 1000})
//	defer c.Close()
//
// # TTL Support
//
// Use [WithTTL] to set per-entry expiration:
//
//	c.Put("session", data, cache.WithTTL(30*time.Minute))
//
// Expired entries are lazily evicted on access.
package cache
