package presentation

import "sync"

// CardState is the on-screen interaction state of one card.
type CardState struct {
	Likes        int  `json:"likes"`
	EmailVisible bool `json:"emailVisible"`
}

func defaultCard() CardState { return CardState{EmailVisible: true} }

// Cards holds CardState keyed by record id. Unknown ids read as the default:
// no likes, email shown.
type Cards struct {
	mu    sync.Mutex
	state map[int]CardState
}

// NewCards returns an empty store.
func NewCards() *Cards {
	return &Cards{state: make(map[int]CardState)}
}

// Get returns the state for id.
func (c *Cards) Get(id int) CardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(id)
}

// Like increments the like counter and returns the new count.
func (c *Cards) Like(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cs := c.getLocked(id)
	cs.Likes++
	c.state[id] = cs
	return cs.Likes
}

// ToggleEmail flips email visibility and returns whether it is now shown.
func (c *Cards) ToggleEmail(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	cs := c.getLocked(id)
	cs.EmailVisible = !cs.EmailVisible
	c.state[id] = cs
	return cs.EmailVisible
}

// Reset forgets every card.
func (c *Cards) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = make(map[int]CardState)
}

// Snapshot returns a copy of the touched cards.
func (c *Cards) Snapshot() map[int]CardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]CardState, len(c.state))
	for id, cs := range c.state {
		out[id] = cs
	}
	return out
}

func (c *Cards) getLocked(id int) CardState {
	if cs, ok := c.state[id]; ok {
		return cs
	}
	return defaultCard()
}
