package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTriggerRunsHooksInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		h.OnShutdown(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		h.Trigger()
	}()

	if err := h.Wait(); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}

	want := []int{2, 1, 0}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("hook order = %v, want %v", order, want)
		}
	}
}

func TestWaitReturnsLastHookError(t *testing.T) {
	h := NewHandler(time.Second)

	hookErr := errors.New("close failed")
	h.OnShutdown(func(context.Context) error { return hookErr })
	h.OnShutdown(func(context.Context) error { return nil })

	go h.Trigger()

	if err := h.Wait(); !errors.Is(err, hookErr) {
		t.Errorf("Wait() error = %v, want %v", err, hookErr)
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	h := NewHandler(time.Second)

	h.Trigger()
	h.Trigger()

	if err := h.Wait(); err != nil {
		t.Errorf("Wait() error: %v", err)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done() not closed after Wait() returned")
	}
}

func TestHookDeadline(t *testing.T) {
	h := NewHandler(20 * time.Millisecond)

	h.OnShutdown(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	go h.Trigger()

	start := time.Now()
	err := h.Wait()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Wait() took %v, deadline not enforced", elapsed)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want deadline exceeded", err)
	}
}
