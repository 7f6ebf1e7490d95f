package jobqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type noopJob struct{}

func (n noopJob) Run(ctx context.Context) error { return nil }

// blockWorker submits a job that holds the worker until the returned func is called.
func blockWorker(t *testing.T, ex *Executor) func() {
	t.Helper()
	blockCtx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	if err := ex.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
		close(started)
		<-blockCtx.Done()
		return nil
	})); err != nil {
		t.Fatalf("submit blocking job: %v", err)
	}
	<-started
	return cancel
}

func TestExecutor_SubmitAndStop(t *testing.T) {
	t.Parallel()
	ex := NewExecutor(Config{})
	defer ex.Stop()

	if err := ex.Submit(context.Background(), noopJob{}); err != nil {
		t.Fatalf("submit error: %v", err)
	}
}

func TestExecutor_FIFOOrdering(t *testing.T) {
	t.Parallel()
	ex := NewExecutor(Config{QueueSize: 10})
	defer ex.Stop()

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 5; i++ {
		v := i
		if err := ex.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, v)
			mu.Unlock()
			return nil
		})); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ex.Barrier(ctx); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 5 {
		t.Fatalf("expected 5 jobs, got %v", order)
	}
	for i, v := range order {
		if i != v {
			t.Fatalf("expected FIFO order, got %v", order)
		}
	}
}

func TestExecutor_QueueFull(t *testing.T) {
	t.Parallel()
	ex := NewExecutor(Config{QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond})
	defer ex.Stop()

	unblock := blockWorker(t, ex)
	defer unblock()

	// Fill the buffer
	_ = ex.Submit(context.Background(), noopJob{})
	err := ex.Submit(context.Background(), noopJob{})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected queue full error, got %v", err)
	}
}

func TestExecutor_SubmitAfterStop(t *testing.T) {
	t.Parallel()
	ex := NewExecutor(Config{})
	ex.Stop()
	if err := ex.Submit(context.Background(), noopJob{}); !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("expected ErrExecutorClosed, got %v", err)
	}
	// Stop and Close are idempotent.
	ex.Stop()
	if err := ex.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestExecutor_StopDrainsPending(t *testing.T) {
	t.Parallel()
	ex := NewExecutor(Config{QueueSize: 4})

	unblock := blockWorker(t, ex)
	var ran int32
	for i := 0; i < 3; i++ {
		if err := ex.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		unblock()
	}()
	ex.Stop()

	if got := atomic.LoadInt32(&ran); got != 3 {
		t.Fatalf("expected pending jobs drained, ran %d", got)
	}
}

func TestSubmit_ContextCanceledWhileWaiting(t *testing.T) {
	ex := NewExecutor(Config{QueueSize: 1, EnqueueTimeout: time.Second})
	defer ex.Stop()

	unblock := blockWorker(t, ex)
	defer unblock()

	// Fill the buffer with one more job so the next submit will block on send.
	_ = ex.Submit(context.Background(), noopJob{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ex.Submit(ctx, noopJob{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBarrier_WaitsForPreviousJobs(t *testing.T) {
	ex := NewExecutor(Config{})
	defer ex.Stop()

	var ranFirst int32
	if err := ex.Submit(context.Background(), JobFunc(func(ctx context.Context) error {
		time.Sleep(30 * time.Millisecond)
		atomic.StoreInt32(&ranFirst, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := ex.Barrier(ctx); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&ranFirst) == 0 {
		t.Fatalf("barrier returned before previous job executed")
	}
}
