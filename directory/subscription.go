package directory

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription delivers the latest View after every change. C has capacity
// one: a view that has not been received yet is replaced by the newer one, so
// a slow reader only ever sees the current state.
type Subscription struct {
	ID uuid.UUID
	C  <-chan View

	ch    chan View
	state *State
	once  sync.Once
}

// Unsubscribe stops delivery and closes C. Safe to call multiple times.
func (sub *Subscription) Unsubscribe() {
	sub.once.Do(func() {
		sub.state.mu.Lock()
		defer sub.state.mu.Unlock()
		if _, ok := sub.state.subs[sub.ID]; ok {
			delete(sub.state.subs, sub.ID)
			close(sub.ch)
		}
	})
}

// offer replaces any undelivered view with v. Callers hold the state lock, so
// there is a single sender per channel.
func (sub *Subscription) offer(v View) {
	select {
	case sub.ch <- v:
		return
	default:
	}
	select {
	case <-sub.ch:
	default:
	}
	select {
	case sub.ch <- v:
	default:
	}
}
