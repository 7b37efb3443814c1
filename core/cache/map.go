package cache

import (
	"sync"
	"time"
)

type mapEntry struct {
	val       any
	expiresAt time.Time // zero means no expiry
}

// Map is an unbounded in-memory cache. The zero value is not usable;
// construct with NewMap.
type Map struct {
	mu      sync.Mutex
	entries map[string]mapEntry
}

func NewMap() *Map {
	return &Map{entries: make(map[string]mapEntry)}
}

func (m *Map) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.val, true
}

func (m *Map) Put(key string, val any, opts ...PutOption) {
	var o PutOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := mapEntry{val: val}
	if o.TTL > 0 {
		e.expiresAt = time.Now().Add(o.TTL)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

func (m *Map) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *Map) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]mapEntry)
	m.mu.Unlock()
}

func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ Cache = (*Map)(nil)
