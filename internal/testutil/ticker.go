package testutil

import "sync"

// Ticker is a deterministic stand-in for the caller-owned compression
// timer. Tests call Tick wherever production code would wait on a wall
// clock, so wall-advance sequences replay identically.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Ticker struct {
	mu    sync.Mutex
	ticks int64
}

// NewTicker creates a ticker starting at 0. The first Tick returns 1.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Tick advances logical time by one step and returns the new count.
func (t *Ticker) Tick() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ticks++
	return t.ticks
}

// Ticks returns the current count without advancing.
func (t *Ticker) Ticks() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Reset rewinds the ticker to 0 for test reuse.
func (t *Ticker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ticks = 0
}
