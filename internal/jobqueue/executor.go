// Package jobqueue provides a single-lane FIFO work queue. Jobs run one at a
// time on a dedicated worker goroutine, in submission order, exactly once.
// There is no retry: a failed job is reported to the ErrorHandler and dropped.
package jobqueue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// Executor executes Jobs sequentially on one worker goroutine.
type Executor struct {
	cfg   Config
	queue chan queuedJob

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 → running, 1 → closed

	wg sync.WaitGroup
}

// NewExecutor constructs the executor and starts its worker.
func NewExecutor(cfg Config) *Executor {
	// Apply zero-value defaults.
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 4
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}

	p := &Executor{
		cfg:   cfg,
		queue: make(chan queuedJob, cfg.QueueSize),
		done:  make(chan struct{}),
	}
	p.wg.Add(1)
	go p.runWorker()
	return p
}

// Submit enqueues job.
//
//   - Returns nil on success.
//   - Returns ErrExecutorClosed if the executor is stopped.
//   - Returns ErrQueueFull (wrapped in *QueueFullError) if the queue is full
//     after EnqueueTimeout elapses.
//   - Returns ctx.Err() if the caller-provided context is cancelled first.
func (p *Executor) Submit(ctx context.Context, job Job) error {
	// Fast checks to avoid accepting work after Stop().
	if atomic.LoadUint32(&p.closed) == 1 {
		return ErrExecutorClosed
	}
	select {
	case <-p.done:
		return ErrExecutorClosed
	default:
	}

	qj := queuedJob{ctx: ctx, job: job}

	timer := time.NewTimer(p.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case p.queue <- qj:
		submissionsTotal.Inc()
		return nil

	case <-p.done: // Stop() may be called while waiting for space
		return ErrExecutorClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		queueFullTotal.Inc()
		return &QueueFullError{
			Length:   len(p.queue),
			Capacity: cap(p.queue),
		}
	}
}

// Barrier enqueues a no-op job and waits until it runs, ensuring all
// previously submitted jobs have completed.
func (p *Executor) Barrier(ctx context.Context) error {
	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := p.Submit(ctx, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals the worker to finish draining its queue, waits for it to
// terminate, and then returns. It is idempotent and safe for concurrent use.
func (p *Executor) Stop() {
	if !atomic.CompareAndSwapUint32(&p.closed, 0, 1) {
		return // already closed
	}

	log.Debug().Int("pending", len(p.queue)).Msg("jobqueue: stopping executor")

	close(p.done)
	p.wg.Wait()

	log.Debug().Msg("jobqueue: executor stopped, queue drained")
}

// Close lets Executor satisfy io.Closer.
func (p *Executor) Close() error {
	p.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (p *Executor) runWorker() {
	defer p.wg.Done()

	for {
		select {
		case qj := <-p.queue:
			p.execute(qj)
			queueDepth.Set(float64(len(p.queue)))

		case <-p.done:
			// Drain remaining jobs, preserving FIFO, then exit.
			drained := 0
			for {
				select {
				case qj := <-p.queue:
					p.execute(qj)
					drained++
				default:
					if drained > 0 {
						log.Debug().Int("drained", drained).Msg("jobqueue: drained jobs on stop")
					}
					queueDepth.Set(0)
					return
				}
			}
		}
	}
}

// execute runs one job, isolating the worker from job panics.
func (p *Executor) execute(qj queuedJob) {
	if qj.job == nil {
		return
	}

	// Honour caller context so a cancelled job doesn't stall the queue.
	if err := qj.ctx.Err(); err != nil {
		p.safeHandleError(err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("jobqueue: job panic")
			p.safeHandleError(&PanicError{Value: r})
		}
	}()

	start := time.Now()
	err := qj.job.Run(qj.ctx)
	runDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		p.safeHandleError(err)
	}
}

func (p *Executor) safeHandleError(err error) {
	if err == nil || p.cfg.ErrorHandler == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("jobqueue: error handler panic")
			}
		}()
		p.cfg.ErrorHandler(err)
	}()
}
