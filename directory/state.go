package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/as3d12/instaboard/client"
	"github.com/as3d12/instaboard/internal/jobqueue"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BatchSize is the number of records requested by every fetch.
const BatchSize = 12

// FetchFailedMessage is the user-facing text of the Error phase.
const FetchFailedMessage = "Failed to fetch users. Please try again."

// ErrClosed is returned by AwaitIdle after Close.
var ErrClosed = errors.New("directory closed")

// Fetcher returns one raw batch of count records. *client.Client satisfies it.
type Fetcher interface {
	FetchUsers(ctx context.Context, count int) ([]client.RawUser, error)
}

// fetchKind distinguishes a fresh load from an append.
type fetchKind int

const (
	fetchFresh fetchKind = iota
	fetchAppend
)

func (k fetchKind) String() string {
	if k == fetchAppend {
		return "append"
	}
	return "fresh"
}

// State owns the accumulated records, the search query and the derived view.
// The presentation layer reads it through View or Subscribe and changes it
// only through Retry, LoadMore and SetQuery.
type State struct {
	fetcher      Fetcher
	exec         *jobqueue.Executor
	log          zerolog.Logger
	fetchTimeout time.Duration
	queueCfg     jobqueue.Config

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	phase    Phase
	errMsg   string
	records  []UserRecord
	query    string
	filtered []UserRecord
	lastKind fetchKind
	gen      uint64
	subs     map[uuid.UUID]*Subscription
	closed   bool
}

// New enters InitialLoading and starts the initial fetch in the background.
func New(fetcher Fetcher, opts ...Option) *State {
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	s := &State{
		fetcher:      fetcher,
		log:          log.Logger,
		fetchTimeout: DefaultFetchTimeout,
		parent:       context.Background(),
		phase:        InitialLoading,
		filtered:     DeriveFilteredView(nil, ""),
		subs:         make(map[uuid.UUID]*Subscription),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "directory").Logger()
	s.ctx, s.cancel = context.WithCancel(s.parent)
	s.queueCfg.ErrorHandler = s.handleJobError
	s.exec = jobqueue.NewExecutor(s.queueCfg)

	transitionsTotal.WithLabelValues(InitialLoading.String()).Inc()
	s.mu.Lock()
	s.lastKind = fetchFresh
	s.mu.Unlock()
	s.submitFetch(fetchFresh)
	return s
}

// View returns a snapshot of the current state.
func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Retry re-runs the last attempted fetch (fresh or append). It only acts in
// the Error phase and reports whether a fetch was started.
func (s *State) Retry() bool {
	s.mu.Lock()
	if s.closed || s.phase != Error {
		phase := s.phase
		s.mu.Unlock()
		droppedActionsTotal.WithLabelValues("retry").Inc()
		s.log.Debug().Str("phase", phase.String()).Msg("retry ignored")
		return false
	}
	kind := s.lastKind
	s.beginFetchLocked(kind)
	s.mu.Unlock()

	s.submitFetch(kind)
	return true
}

// LoadMore appends the next batch. It only acts in the Ready phase; a call
// while an append is pending is dropped, never queued. An active query does
// not block it: the filter re-narrows the larger set.
func (s *State) LoadMore() bool {
	s.mu.Lock()
	if s.closed || s.phase != Ready {
		phase := s.phase
		s.mu.Unlock()
		droppedActionsTotal.WithLabelValues("load_more").Inc()
		s.log.Debug().Str("phase", phase.String()).Msg("load more ignored")
		return false
	}
	s.beginFetchLocked(fetchAppend)
	s.mu.Unlock()

	s.submitFetch(fetchAppend)
	return true
}

// SetQuery stores text verbatim and re-derives the filtered view. It never
// fetches and is accepted in every phase.
func (s *State) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = text
	s.filtered = DeriveFilteredView(s.records, s.query)
	s.publishLocked()
}

// Subscribe registers for view updates. The current view is delivered at once.
func (s *State) Subscribe() *Subscription {
	ch := make(chan View, 1)
	sub := &Subscription{ID: uuid.New(), C: ch, ch: ch, state: s}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return sub
	}
	s.subs[sub.ID] = sub
	sub.offer(s.viewLocked())
	return sub
}

// AwaitIdle blocks until every fetch started so far has been applied.
func (s *State) AwaitIdle(ctx context.Context) error {
	err := s.exec.Barrier(ctx)
	if errors.Is(err, jobqueue.ErrExecutorClosed) {
		return ErrClosed
	}
	return err
}

// Close cancels any in-flight fetch, waits for the queue to drain, and closes
// all subscriptions. A fetch cut short by Close is discarded: the phase and
// records stay as they were. Safe to call multiple times.
func (s *State) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub.ch)
	}
	s.mu.Unlock()

	s.cancel()
	return s.exec.Close()
}

// ------------------------- internals -------------------------

// beginFetchLocked enters the loading phase for kind.
func (s *State) beginFetchLocked(kind fetchKind) {
	s.lastKind = kind
	if kind == fetchAppend {
		s.setPhaseLocked(AppendLoading, "")
	} else {
		s.setPhaseLocked(InitialLoading, "")
	}
	s.publishLocked()
}

// submitFetch hands the fetch to the worker. The phase already rules out a
// second concurrent fetch, so this runs without the lock.
func (s *State) submitFetch(kind fetchKind) {
	id := uuid.New()
	job := jobqueue.JobFunc(func(context.Context) error {
		s.runFetch(id, kind)
		return nil
	})
	// The queue context never cancels so the job always runs and settles the
	// phase; cancellation reaches the fetch itself through s.ctx.
	if err := s.exec.Submit(context.WithoutCancel(s.ctx), job); err != nil {
		s.log.Error().Err(err).Str("fetch_id", id.String()).Str("kind", kind.String()).Msg("fetch not scheduled")
		s.mu.Lock()
		s.setPhaseLocked(Error, FetchFailedMessage)
		s.publishLocked()
		s.mu.Unlock()
	}
}

func (s *State) runFetch(id uuid.UUID, kind fetchKind) {
	ctx := s.ctx
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.log.Debug().Str("fetch_id", id.String()).Str("kind", kind.String()).Msg("fetch discarded after close")
		return
	}

	base := 0
	if kind == fetchAppend {
		base = len(s.records)
	}
	logger := s.log.With().
		Str("fetch_id", id.String()).
		Str("kind", kind.String()).
		Int("count", BatchSize).
		Int("base_offset", base).
		Dur("elapsed", time.Since(start)).
		Logger()

	var batch []UserRecord
	if err == nil {
		batch, err = Normalize(raw, base)
	}
	if err != nil {
		logger.Error().Err(err).Msg("fetch users failed")
		s.setPhaseLocked(Error, FetchFailedMessage)
		s.publishLocked()
		return
	}

	if kind == fetchAppend {
		s.records = append(s.records, batch...)
	} else {
		s.records = batch
		s.gen++
	}
	s.filtered = DeriveFilteredView(s.records, s.query)
	s.setPhaseLocked(Ready, "")
	recordsGauge.Set(float64(len(s.records)))
	logger.Info().Int("received", len(batch)).Int("records", len(s.records)).Msg("fetch users applied")
	s.publishLocked()
}

// fetch calls the fetcher, turning a panic into an ordinary failure so the
// phase always settles.
func (s *State) fetch(ctx context.Context) (raw []client.RawUser, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: fetcher panic: %v", client.ErrNetwork, r)
		}
	}()
	return s.fetcher.FetchUsers(ctx, BatchSize)
}

func (s *State) setPhaseLocked(p Phase, msg string) {
	if s.phase != p {
		transitionsTotal.WithLabelValues(p.String()).Inc()
		s.log.Debug().Str("from", s.phase.String()).Str("to", p.String()).Msg("phase transition")
	}
	s.phase = p
	s.errMsg = msg
}

func (s *State) viewLocked() View {
	return View{
		Phase:           s.phase,
		ErrorMessage:    s.errMsg,
		Records:         cloneRecords(s.records),
		Query:           s.query,
		FilteredRecords: cloneRecords(s.filtered),
		Generation:      s.gen,
	}
}

func (s *State) publishLocked() {
	for _, sub := range s.subs {
		sub.offer(s.viewLocked())
	}
}

func (s *State) handleJobError(err error) {
	s.log.Error().Err(err).Msg("fetch job failed")
}
