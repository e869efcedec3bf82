package queue

import (
	"math/rand"
	"sort"
	"testing"
)

func TestFifoBackerOrder(t *testing.T) {
	f := &fifo[int]{}

	if _, ok := f.remove(); ok {
		t.Error("remove() on empty fifo returned ok")
	}

	for i := 0; i < 10; i++ {
		f.insert(i)
	}
	if f.size() != 10 {
		t.Errorf("size() = %d, want 10", f.size())
	}

	for i := 0; i < 10; i++ {
		v, ok := f.remove()
		if !ok || v != i {
			t.Fatalf("remove() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}

	if _, ok := f.remove(); ok {
		t.Error("remove() on drained fifo returned ok")
	}
}

func TestMaxHeapBackerOrder(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"ascending", []int{1, 2, 3, 4, 5}},
		{"descending", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}},
		{"single", []int{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &maxHeap[int]{}
			for _, v := range tt.input {
				h.insert(v)
			}

			want := append([]int(nil), tt.input...)
			sort.Sort(sort.Reverse(sort.IntSlice(want)))

			for i, w := range want {
				v, ok := h.remove()
				if !ok || v != w {
					t.Fatalf("remove() #%d = (%d, %v), want (%d, true)", i, v, ok, w)
				}
			}

			if _, ok := h.remove(); ok {
				t.Error("remove() on drained heap returned ok")
			}
		})
	}
}

func TestMaxHeapBackerRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := &maxHeap[int]{}

	const n = 1000
	for i := 0; i < n; i++ {
		h.insert(rng.Intn(100))
	}

	prev, ok := h.remove()
	if !ok {
		t.Fatal("remove() failed on non-empty heap")
	}
	for i := 1; i < n; i++ {
		v, ok := h.remove()
		if !ok {
			t.Fatalf("remove() #%d failed", i)
		}
		if v > prev {
			t.Fatalf("remove() #%d = %d after %d; sequence not non-increasing", i, v, prev)
		}
		prev = v
	}
}
