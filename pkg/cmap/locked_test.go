package cmap

import (
	"fmt"
	"sync"
	"testing"
)

func TestMapSwapPopFindSequence(t *testing.T) {
	m := New[int](1, 2, 16)

	if prev, ok := m.Swap("a", 1); ok {
		t.Errorf("Swap(a, 1) = (%d, true), want absent", prev)
	}
	if prev, ok := m.Swap("a", 2); !ok || prev != 1 {
		t.Errorf("Swap(a, 2) = (%d, %v), want (1, true)", prev, ok)
	}
	if v, ok := m.Pop("a"); !ok || v != 2 {
		t.Errorf("Pop(a) = (%d, %v), want (2, true)", v, ok)
	}
	if v, ok := m.Find("a"); ok {
		t.Errorf("Find(a) = (%d, true), want absent", v)
	}
}

func TestMapPopAbsent(t *testing.T) {
	m := New[string](1, 2, 0)

	if v, ok := m.Pop("missing"); ok {
		t.Errorf("Pop(missing) = (%q, true), want absent", v)
	}
}

func TestMapLen(t *testing.T) {
	m := New[int](1, 2, 4)

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	m.Swap("a", 1)
	m.Swap("b", 2)
	m.Swap("a", 3) // replace, not insert
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	m.Pop("a")
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

// TestMapFindCopyIndependence checks that a value returned by Find is not
// affected by later mutation of the entry.
func TestMapFindCopyIndependence(t *testing.T) {
	type record struct {
		N int
	}

	m := New[record](1, 2, 4)
	m.Swap("k", record{N: 1})

	got, ok := m.Find("k")
	if !ok || got.N != 1 {
		t.Fatalf("Find(k) = (%+v, %v), want ({1}, true)", got, ok)
	}

	m.Swap("k", record{N: 2})
	if got.N != 1 {
		t.Errorf("earlier Find result mutated to %+v after Swap", got)
	}
}

func TestMapHashStable(t *testing.T) {
	m := New[int](0xdead, 0xbeef, 0)

	h := m.Hash("some-key")
	for i := 0; i < 10; i++ {
		if got := m.Hash("some-key"); got != h {
			t.Fatalf("Hash(some-key) = %#x on call %d, want %#x", got, i, h)
		}
	}

	other := New[int](0xfeed, 0xface, 0)
	if other.Hash("some-key") == h {
		t.Error("Hash with different seeds produced the same value")
	}
}

func TestMapConcurrentSwap(t *testing.T) {
	const (
		workers = 8
		keys    = 100
	)

	m := New[int](7, 11, keys)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < keys; i++ {
				m.Swap(fmt.Sprintf("key-%d", i), w)
			}
		}(w)
	}
	wg.Wait()

	if m.Len() != keys {
		t.Errorf("Len() = %d, want %d", m.Len(), keys)
	}
	for i := 0; i < keys; i++ {
		v, ok := m.Find(fmt.Sprintf("key-%d", i))
		if !ok || v < 0 || v >= workers {
			t.Errorf("Find(key-%d) = (%d, %v), want a worker id", i, v, ok)
		}
	}
}
