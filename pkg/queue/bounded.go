package queue

import (
	"cmp"
	"sync"
)

// boundedState is the bounded blocking engine. It extends the unbounded
// engine with a fixed capacity and a not-full condition: push blocks while
// the backing structure holds capacity items, which is how backpressure
// reaches producers. The backing structure's length never exceeds capacity
// at any instant the mutex is held.
type boundedState[T any] struct {
	mu       sync.Mutex
	notEmpty sync.Cond
	notFull  sync.Cond
	items    backer[T]
	capacity int
}

func newBoundedState[T any](capacity int, items backer[T]) *boundedState[T] {
	if capacity < 1 {
		panic("queue: capacity must be at least 1")
	}
	s := &boundedState[T]{items: items, capacity: capacity}
	s.notEmpty.L = &s.mu
	s.notFull.L = &s.mu
	return s
}

// pop removes and returns the next item, blocking while the backing
// structure is empty, then wakes at most one blocked pusher.
func (s *boundedState[T]) pop() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.items.size() == 0 {
		s.notEmpty.Wait()
	}
	item, ok := s.items.remove()
	if !ok {
		panic("queue: backing structure empty after non-empty check")
	}
	s.notFull.Signal()
	return item
}

// push inserts an item, blocking while the backing structure is full, then
// wakes at most one blocked popper. A full queue stalls the producer; it
// never rejects or drops the item.
func (s *boundedState[T]) push(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.items.size() == s.capacity {
		s.notFull.Wait()
	}
	s.items.insert(item)
	s.notEmpty.Signal()
}

func (s *boundedState[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.size()
}

// BoundedQueue is a fixed-capacity, blocking FIFO queue. Push blocks while
// the queue is full and Pop blocks while it is empty.
//
// The zero value is not usable; construct with NewBounded.
type BoundedQueue[T any] struct {
	state *boundedState[T]
}

// NewBounded returns a new FIFO queue holding at most capacity items.
// It panics if capacity is less than 1.
func NewBounded[T any](capacity int) BoundedQueue[T] {
	return BoundedQueue[T]{state: newBoundedState[T](capacity, &fifo[T]{})}
}

// Push adds an item to the back of the queue, blocking until the queue is
// not full.
func (q BoundedQueue[T]) Push(item T) {
	q.state.push(item)
}

// Pop removes and returns the item at the front of the queue, blocking
// until the queue is non-empty.
func (q BoundedQueue[T]) Pop() T {
	return q.state.pop()
}

// Len returns the number of items currently queued.
func (q BoundedQueue[T]) Len() int {
	return q.state.len()
}

// Cap returns the queue's fixed capacity.
func (q BoundedQueue[T]) Cap() int {
	return q.state.capacity
}

// Clone returns a handle sharing this queue's state; it is not a copy of
// the contents.
func (q BoundedQueue[T]) Clone() BoundedQueue[T] {
	return q
}

// BoundedPriorityQueue is a fixed-capacity, blocking priority queue: Pop
// returns an item that is >= every other item present, Push blocks while
// the queue is full. The order among equal items is unspecified.
//
// The zero value is not usable; construct with NewBoundedPriority.
type BoundedPriorityQueue[T cmp.Ordered] struct {
	state *boundedState[T]
}

// NewBoundedPriority returns a new priority queue holding at most capacity
// items. It panics if capacity is less than 1.
func NewBoundedPriority[T cmp.Ordered](capacity int) BoundedPriorityQueue[T] {
	return BoundedPriorityQueue[T]{state: newBoundedState[T](capacity, &maxHeap[T]{})}
}

// Push adds an item to the queue, blocking until the queue is not full.
func (q BoundedPriorityQueue[T]) Push(item T) {
	q.state.push(item)
}

// Pop removes and returns a maximal item, blocking until the queue is
// non-empty.
func (q BoundedPriorityQueue[T]) Pop() T {
	return q.state.pop()
}

// Len returns the number of items currently queued.
func (q BoundedPriorityQueue[T]) Len() int {
	return q.state.len()
}

// Cap returns the queue's fixed capacity.
func (q BoundedPriorityQueue[T]) Cap() int {
	return q.state.capacity
}

// Clone returns a handle sharing this queue's state; it is not a copy of
// the contents.
func (q BoundedPriorityQueue[T]) Clone() BoundedPriorityQueue[T] {
	return q
}
