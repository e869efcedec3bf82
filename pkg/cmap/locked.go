package cmap

import (
	"sync"

	"github.com/dchest/siphash"
)

// Map is a concurrency-safe map guarded by a single lock.
//
// Every operation holds the lock for the duration of the call and releases
// it before returning; no operation hands out a reference into the guarded
// storage. Go's built-in map supplies its own randomized bucket hashing;
// the seed pair given at construction keys the exported Hash, which
// ShardMap uses for routing.
type Map[V any] struct {
	mu     sync.RWMutex
	items  map[string]V
	k0, k1 uint64
}

// New creates a Map with the given hash seeds and initial capacity.
// Seeds should be process-random values, not constants.
func New[V any](k0, k1 uint64, capacity int) *Map[V] {
	return &Map[V]{
		items: make(map[string]V, capacity),
		k0:    k0,
		k1:    k1,
	}
}

// Swap inserts or replaces the value at key, returning the previously
// stored value if there was one.
func (m *Map[V]) Swap(key string, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.items[key]
	m.items[key] = value
	return prev, ok
}

// Pop removes the entry at key if present and returns its value. An absent
// key is a normal outcome, not an error.
func (m *Map[V]) Pop(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.items[key]
	if ok {
		delete(m.items, key)
	}
	return value, ok
}

// Find returns a copy of the value stored at key. The copy is deliberate:
// by the time the caller looks at the result the lock is gone and another
// goroutine may have replaced or removed the entry.
func (m *Map[V]) Find(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	return value, ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Hash returns the keyed SipHash-2-4 of key under this map's seed pair.
// For a given instance the result for a key never changes.
func (m *Map[V]) Hash(key string) uint64 {
	return siphash.Hash(m.k0, m.k1, []byte(key))
}
