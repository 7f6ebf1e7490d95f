package directory

import (
	"context"
	"time"

	"github.com/as3d12/instaboard/internal/jobqueue"
	"github.com/rs/zerolog"
)

// DefaultFetchTimeout caps a single fetch so an unresponsive endpoint cannot
// hold the board in a loading phase forever.
const DefaultFetchTimeout = 15 * time.Second

// Option configures a State during construction in New.
type Option func(*State)

// WithLogger sets the logger used for fetch and transition events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.log = l }
}

// WithFetchTimeout sets the per-fetch latency cap. Zero or negative disables it.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *State) { s.fetchTimeout = d }
}

// WithContext sets the parent context of every fetch. Cancelling it makes
// in-flight and later fetches fail.
func WithContext(ctx context.Context) Option {
	return func(s *State) {
		if ctx != nil {
			s.parent = ctx
		}
	}
}

// WithQueueConfig sizes the fetch queue. Its ErrorHandler is replaced.
func WithQueueConfig(cfg jobqueue.Config) Option {
	return func(s *State) { s.queueCfg = cfg }
}
