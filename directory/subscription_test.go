package directory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) View {
	t.Helper()
	select {
	case v, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no view delivered")
		return View{}
	}
}

func TestSubscribe_DeliversCurrentViewThenUpdates(t *testing.T) {
	f := newScriptedFetcher(ok(firstBatchNames...))
	gate := f.hold()
	s := newTestState(t, f)

	sub := s.Subscribe()
	defer sub.Unsubscribe()
	assert.NotEqual(t, uuid.Nil, sub.ID)

	v := receive(t, sub)
	assert.Equal(t, InitialLoading, v.Phase)

	close(gate)
	awaitIdle(t, s)
	v = receive(t, sub)
	assert.Equal(t, Ready, v.Phase)
	assert.Len(t, v.Records, 12)
}

func TestSubscribe_LatestViewWins(t *testing.T) {
	s := newTestState(t, newScriptedFetcher(ok(firstBatchNames...)))
	awaitIdle(t, s)

	sub := s.Subscribe()
	defer sub.Unsubscribe()
	s.SetQuery("a")
	s.SetQuery("al")
	s.SetQuery("ali")

	v := receive(t, sub)
	assert.Equal(t, "ali", v.Query)
	select {
	case extra := <-sub.C:
		t.Fatalf("stale view still queued: %+v", extra)
	default:
	}
}

func TestSubscribe_IndependentCopies(t *testing.T) {
	s := newTestState(t, newScriptedFetcher(ok(firstBatchNames...)))
	awaitIdle(t, s)

	a, b := s.Subscribe(), s.Subscribe()
	defer a.Unsubscribe()
	defer b.Unsubscribe()
	va, vb := receive(t, a), receive(t, b)
	va.Records[0].Name = "Mallory"
	assert.Equal(t, "Alice Smith", vb.Records[0].Name)
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	s := newTestState(t, newScriptedFetcher(ok(firstBatchNames...)))
	awaitIdle(t, s)

	sub := s.Subscribe()
	receive(t, sub)
	sub.Unsubscribe()
	sub.Unsubscribe()

	_, open := <-sub.C
	assert.False(t, open)

	s.SetQuery("still works")
	assert.Equal(t, "still works", s.View().Query)
}

func TestClose_ClosesSubscriptions(t *testing.T) {
	s := New(newScriptedFetcher(ok(firstBatchNames...)))
	sub := s.Subscribe()
	require.NoError(t, s.Close())

	// drain whatever was buffered, then the channel must be closed
	for range sub.C {
	}
	sub.Unsubscribe()

	late := s.Subscribe()
	_, open := <-late.C
	assert.False(t, open)
}
