package jobqueue

import (
	"errors"
	"testing"
)

func TestQueueFullError_Is(t *testing.T) {
	err := &QueueFullError{Length: 1, Capacity: 1}
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected errors.Is(_, ErrQueueFull)")
	}
	if errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("queue full must not match ErrExecutorClosed")
	}
}
