package cmap

import (
	"github.com/dchest/siphash"
)

// ShardMap partitions keys across a fixed array of independently locked
// maps. Operations on keys that hash to different shards proceed fully in
// parallel; operations on the same key serialize through that key's shard
// lock. There is no map-wide lock and no cross-shard operation, so no
// lock-ordering protocol is needed.
//
// A ShardMap value is a handle: copying it, or calling Clone, aliases the
// same shard array. The shard array and seeds are immutable after
// construction; there is no resharding.
type ShardMap[V any] struct {
	state *shardState[V]
}

type shardState[V any] struct {
	shards []*Map[V]
	k0, k1 uint64
}

// NewSharded creates a ShardMap with the given shard count, hash seeds,
// and per-shard initial capacity. All shards share the seed pair, so
// hashing is consistent across the instance. It panics if shards is less
// than 1.
func NewSharded[V any](shards int, k0, k1 uint64, capacity int) ShardMap[V] {
	if shards < 1 {
		panic("cmap: shard count must be at least 1")
	}

	state := &shardState[V]{
		shards: make([]*Map[V], shards),
		k0:     k0,
		k1:     k1,
	}
	for i := range state.shards {
		state.shards[i] = New[V](k0, k1, capacity)
	}
	return ShardMap[V]{state: state}
}

// Shard returns the index of the shard responsible for key. The index is
// stable for the lifetime of the instance.
func (m ShardMap[V]) Shard(key string) int {
	return int(siphash.Hash(m.state.k0, m.state.k1, []byte(key)) % uint64(len(m.state.shards)))
}

func (m ShardMap[V]) shard(key string) *Map[V] {
	return m.state.shards[m.Shard(key)]
}

// Swap inserts or replaces the value at key in its shard, returning the
// previously stored value if there was one.
func (m ShardMap[V]) Swap(key string, value V) (V, bool) {
	return m.shard(key).Swap(key, value)
}

// Pop removes the entry at key from its shard if present and returns its
// value.
func (m ShardMap[V]) Pop(key string) (V, bool) {
	return m.shard(key).Pop(key)
}

// Find returns a copy of the value stored at key in its shard.
func (m ShardMap[V]) Find(key string) (V, bool) {
	return m.shard(key).Find(key)
}

// ShardCount returns the number of shards.
func (m ShardMap[V]) ShardCount() int {
	return len(m.state.shards)
}

// Len returns the total number of entries across all shards. Shard locks
// are taken one at a time, so the count is not a consistent snapshot under
// concurrent mutation.
func (m ShardMap[V]) Len() int {
	total := 0
	for _, s := range m.state.shards {
		total += s.Len()
	}
	return total
}

// ShardStats describes the occupancy of one shard.
type ShardStats struct {
	Index int
	Count int
}

// Stats returns per-shard entry counts, taking each shard lock in turn.
func (m ShardMap[V]) Stats() []ShardStats {
	stats := make([]ShardStats, len(m.state.shards))
	for i, s := range m.state.shards {
		stats[i] = ShardStats{Index: i, Count: s.Len()}
	}
	return stats
}

// Clone returns a handle sharing this map's shard array; it is not a copy
// of the contents.
func (m ShardMap[V]) Clone() ShardMap[V] {
	return m
}
