// Package soak drives sustained producer/consumer load through the queue
// and map types in pkg/queue and pkg/cmap.
//
// Producers push encoded (producer, sequence) items for a configured
// duration, optionally rate-limited. Consumers pop items and record the
// last sequence seen per producer in a sharded map. When a single
// consumer drains a FIFO queue the runner additionally asserts push order
// per producer; otherwise only conservation (every item pushed is popped
// exactly once) is checked, since several consumers race from queue to
// map and priority removal reorders by value.
//
// The blocking Pop has no cancellation, so the runner ends a run the way
// the library intends: after producers stop it pushes one stop sentinel
// per consumer. The sentinel is the minimum item value, which a priority
// queue therefore delivers only once everything else has drained.
package soak
