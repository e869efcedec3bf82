package queue

import (
	"cmp"
	"sync"
)

// state is the unbounded blocking engine: one backing structure guarded by
// one mutex and a not-empty condition. Every handle cloned from the same
// constructor call shares one state; all mutation of the backing structure
// happens with mu held.
type state[T any] struct {
	mu       sync.Mutex
	notEmpty sync.Cond
	items    backer[T]
}

func newState[T any](items backer[T]) *state[T] {
	s := &state[T]{items: items}
	s.notEmpty.L = &s.mu
	return s
}

// pop removes and returns the next item, blocking while the backing
// structure is empty. The wait runs in a loop: a wakeup only means "check
// again", both because condition waits can return spuriously and because
// another popper may have taken the item first.
func (s *state[T]) pop() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.items.size() == 0 {
		s.notEmpty.Wait()
	}
	item, ok := s.items.remove()
	if !ok {
		panic("queue: backing structure empty after non-empty check")
	}
	return item
}

// push inserts an item and wakes at most one blocked popper. It never
// blocks. The deferred unlock covers a panic during insertion; a waiter
// woken to find the queue empty simply waits again.
func (s *state[T]) push(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.insert(item)
	s.notEmpty.Signal()
}

func (s *state[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.size()
}

// Queue is an unbounded, blocking FIFO queue.
//
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	state *state[T]
}

// New returns a new unbounded FIFO queue.
func New[T any]() Queue[T] {
	return Queue[T]{state: newState[T](&fifo[T]{})}
}

// Push adds an item to the back of the queue. It never blocks.
func (q Queue[T]) Push(item T) {
	q.state.push(item)
}

// Pop removes and returns the item at the front of the queue, blocking
// until the queue is non-empty.
func (q Queue[T]) Pop() T {
	return q.state.pop()
}

// Len returns the number of items currently queued.
func (q Queue[T]) Len() int {
	return q.state.len()
}

// Clone returns a handle sharing this queue's state; it is not a copy of
// the contents. Pushes and pops through either handle observe each other.
func (q Queue[T]) Clone() Queue[T] {
	return q
}

// PriorityQueue is an unbounded, blocking priority queue: Pop returns an
// item that is >= every other item present. The order among equal items
// is unspecified.
//
// The zero value is not usable; construct with NewPriority.
type PriorityQueue[T cmp.Ordered] struct {
	state *state[T]
}

// NewPriority returns a new unbounded priority queue.
func NewPriority[T cmp.Ordered]() PriorityQueue[T] {
	return PriorityQueue[T]{state: newState[T](&maxHeap[T]{})}
}

// Push adds an item to the queue. It never blocks.
func (q PriorityQueue[T]) Push(item T) {
	q.state.push(item)
}

// Pop removes and returns a maximal item, blocking until the queue is
// non-empty.
func (q PriorityQueue[T]) Pop() T {
	return q.state.pop()
}

// Len returns the number of items currently queued.
func (q PriorityQueue[T]) Len() int {
	return q.state.len()
}

// Clone returns a handle sharing this queue's state; it is not a copy of
// the contents.
func (q PriorityQueue[T]) Clone() PriorityQueue[T] {
	return q
}
