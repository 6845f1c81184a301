package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator returns the same run ID every time.
//
// Render IDs normally come from uuid.NewString; tests that compare response
// headers or log lines swap in this generator so output is byte-stable.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id. An empty id yields
// "test-run-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// NewID returns the fixed ID.
func (g *FixedIDGenerator) NewID() string {
	return g.id
}

// SequenceIDGenerator returns prefix-1, prefix-2, ... in order.
//
// Thread-safety: NewID is guarded by a mutex, so a generator can back a
// server handling concurrent requests.
type SequenceIDGenerator struct {
	prefix string

	mu sync.Mutex
	n  int
}

// NewSequenceIDGenerator creates a generator numbering from 1.
func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	return &SequenceIDGenerator{prefix: prefix}
}

// NewID returns the next ID in the sequence.
func (g *SequenceIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
