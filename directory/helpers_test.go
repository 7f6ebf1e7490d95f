package directory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/as3d12/instaboard/client"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var firstBatchNames = []string{
	"Alice Smith", "Bruno Diaz", "Chloe Park", "Dmitri Ivanov",
	"Elena Rossi", "Farah Khan", "Gavin Brooks", "Hana Sato",
	"Ivan Petrov", "Julia Moreno", "Kenji Ito", "Lima Vance",
}

var secondBatchNames = []string{
	"Mona Reyes", "Nils Berg", "Olga Novak", "Pedro Alves",
	"Quinn Hart", "Rosa Lind", "Sami Haddad", "Tara Quist",
	"Umar Aziz", "Vera Holm", "Wes Carter", "Xena Moss",
}

var errScripted = errors.New("scripted failure")

type fetchResult struct {
	users []client.RawUser
	err   error
	panic any
}

// scriptedFetcher replays results in order and records every call.
type scriptedFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	counts  []int
	gate    chan struct{} // when set, calls wait for it to close
}

func newScriptedFetcher(results ...fetchResult) *scriptedFetcher {
	return &scriptedFetcher{results: results}
}

func (f *scriptedFetcher) push(results ...fetchResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, results...)
}

func (f *scriptedFetcher) hold() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
	return f.gate
}

func (f *scriptedFetcher) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.counts...)
}

func (f *scriptedFetcher) FetchUsers(ctx context.Context, count int) ([]client.RawUser, error) {
	f.mu.Lock()
	f.counts = append(f.counts, count)
	gate := f.gate
	r := fetchResult{err: errors.New("no scripted result")}
	if len(f.results) > 0 {
		r = f.results[0]
		f.results = f.results[1:]
	}
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.panic != nil {
		panic(r.panic)
	}
	return r.users, r.err
}

func ok(names ...string) fetchResult { return fetchResult{users: rawBatch(names...)} }

func fail() fetchResult { return fetchResult{err: errScripted} }

func rawBatch(names ...string) []client.RawUser {
	out := make([]client.RawUser, 0, len(names))
	for _, n := range names {
		first, last, _ := strings.Cut(n, " ")
		slug := strings.ToLower(first)
		out = append(out, client.RawUser{
			Name:    &client.RawName{First: first, Last: last},
			Email:   slug + "@example.com",
			Picture: &client.RawPicture{Large: "https://img.example.com/large/" + slug + ".jpg"},
		})
	}
	return out
}

func newTestState(t *testing.T, f Fetcher, opts ...Option) *State {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	s := New(f, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func awaitIdle(t *testing.T, s *State) View {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.AwaitIdle(ctx))
	return s.View()
}

func names(rs []UserRecord) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func ids(rs []UserRecord) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
