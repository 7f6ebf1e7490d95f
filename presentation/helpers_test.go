package presentation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/as3d12/instaboard/client"
	"github.com/as3d12/instaboard/directory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// queueFetcher hands out batches in order; an empty queue fails.
type queueFetcher struct {
	mu      sync.Mutex
	batches [][]client.RawUser
}

func (f *queueFetcher) push(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, rawUsers(names...))
}

func (f *queueFetcher) FetchUsers(_ context.Context, _ int) ([]client.RawUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.batches) == 0 {
		return nil, errors.New("queue empty")
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b, nil
}

func rawUsers(names ...string) []client.RawUser {
	out := make([]client.RawUser, 0, len(names))
	for _, n := range names {
		first, last, _ := strings.Cut(n, " ")
		slug := strings.ToLower(first)
		out = append(out, client.RawUser{
			Name:    &client.RawName{First: first, Last: last},
			Email:   slug + "@example.com",
			Picture: &client.RawPicture{Large: "https://img.example.com/" + slug + ".jpg"},
		})
	}
	return out
}

func newTestBoard(t *testing.T, f *queueFetcher) *Board {
	t.Helper()
	dir := directory.New(f, directory.WithLogger(zerolog.Nop()))
	t.Cleanup(func() { _ = dir.Close() })
	b := NewBoard(dir, nil, nil)
	settle(t, b)
	return b
}

func settle(t *testing.T, b *Board) directory.View {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, b.Dir.AwaitIdle(ctx))
	return b.View()
}

func readyView(query string, names ...string) directory.View {
	records := make([]directory.UserRecord, 0, len(names))
	for i, n := range names {
		records = append(records, directory.UserRecord{
			ID:         i + 1,
			Name:       n,
			Email:      strings.ToLower(strings.Fields(n)[0]) + "@example.com",
			PictureURL: "https://img.example.com/" + strings.ToLower(strings.Fields(n)[0]) + ".jpg",
		})
	}
	return directory.View{
		Phase:           directory.Ready,
		Records:         records,
		Query:           query,
		FilteredRecords: directory.DeriveFilteredView(records, query),
	}
}
