// Package queue provides blocking, concurrency-safe queues for
// producer/consumer pipelines.
//
// Four queue types are available, all sharing the same engine code:
//
//   - Queue: unbounded FIFO
//   - PriorityQueue: unbounded, max-first
//   - BoundedQueue: fixed-capacity FIFO with backpressure
//   - BoundedPriorityQueue: fixed-capacity, max-first
//
// Pop blocks until an item is available. Push on a bounded queue blocks
// until there is room; Push on an unbounded queue never blocks. There is
// no timeout or cancellation: a blocked call waits indefinitely. Callers
// needing bounded waits should arrange for a producer to push a sentinel
// value instead.
//
// Queue values are handles. Copying a handle, or calling Clone, aliases
// the same underlying queue, so a handle can be passed by value to any
// number of goroutines:
//
//	q := queue.NewBounded[job](64)
//	go producer(q.Clone())
//	go consumer(q.Clone())
//
// Ordering: items pushed by a single goroutine leave a FIFO queue in that
// same relative order. No ordering is defined across goroutines beyond
// mutex acquisition order. A priority queue's Pop returns an item that is
// maximal among the items present at the instant of removal; the order
// among equal items is unspecified.
package queue
