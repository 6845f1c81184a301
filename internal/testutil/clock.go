package testutil

import (
	"sync"
	"time"
)

// FixedClock is a settable clock for tests that render timestamps.
//
// Now returns the same instant until Advance or Set moves it, so a document
// measured and then printed sees one time.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// Epoch is the default instant of a FixedClock.
var Epoch = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// NewFixedClock creates a clock stopped at t. A zero t means Epoch.
func NewFixedClock(t time.Time) *FixedClock {
	if t.IsZero() {
		t = Epoch
	}
	return &FixedClock{now: t}
}

// Now returns the current instant without moving it.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set stops the clock at t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
