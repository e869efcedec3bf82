// Package cmap provides concurrency-safe hash maps with keyed hashing.
//
// Two variants are available:
//
//   - Map: one mutex guarding one map. Simple, and sufficient when
//     contention is low.
//   - ShardMap: a fixed array of independently locked maps. Keys are
//     routed to exactly one shard by a keyed hash, so operations on keys
//     in different shards never contend.
//
// Both take a pair of 64-bit seeds at construction. The seeds key the
// SipHash function used for shard routing; callers should supply
// process-random values rather than constants so that adversarially
// chosen keys cannot be crowded into one shard. Seeds are fixed for the
// instance's lifetime, which keeps a key's shard index stable.
//
// Find returns a copy of the stored value, never a reference into the
// map's storage: the lock is released before the caller inspects the
// result. When V is a pointer type the pointee is still shared.
//
// Key absence is an ordinary outcome, reported as (zero, false).
package cmap
