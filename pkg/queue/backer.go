package queue

import (
	"cmp"

	"github.com/gammazero/deque"
)

// backer is the ordering abstraction behind the blocking engines: a
// structure that accepts items and hands them back in its own order. The
// engines are written once against this interface and instantiated with a
// FIFO or max-heap backing. Implementations are not safe for concurrent
// use; the engine's mutex serializes every call.
type backer[T any] interface {
	insert(item T)
	remove() (T, bool)
	size() int
}

// fifo backs a queue with a double-ended sequence: remove returns the
// earliest-inserted item.
type fifo[T any] struct {
	items deque.Deque[T]
}

func (f *fifo[T]) insert(item T) {
	f.items.PushBack(item)
}

func (f *fifo[T]) remove() (T, bool) {
	if f.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return f.items.PopFront(), true
}

func (f *fifo[T]) size() int {
	return f.items.Len()
}

// maxHeap backs a priority queue with a binary max-heap: remove returns an
// item that is >= every other item present. The heap does not preserve
// insertion order among equal items.
type maxHeap[T cmp.Ordered] struct {
	items []T
}

func (h *maxHeap[T]) insert(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

func (h *maxHeap[T]) remove() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference so the value can be collected
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}
	return top, true
}

func (h *maxHeap[T]) size() int {
	return len(h.items)
}

func (h *maxHeap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent] >= h.items[i] {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *maxHeap[T]) down(i int) {
	n := len(h.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.items[right] > h.items[child] {
			child = right
		}
		if h.items[i] >= h.items[child] {
			break
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
