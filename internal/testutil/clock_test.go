package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_DefaultsToEpoch(t *testing.T) {
	clock := NewFixedClock(time.Time{})
	assert.Equal(t, Epoch, clock.Now())
}

func TestFixedClock_NowIsStable(t *testing.T) {
	start := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFixedClock(start)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start, clock.Now())
}

func TestFixedClock_AdvanceAndSet(t *testing.T) {
	clock := NewFixedClock(Epoch)

	got := clock.Advance(90 * time.Minute)
	assert.Equal(t, Epoch.Add(90*time.Minute), got)
	assert.Equal(t, got, clock.Now())

	later := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestFixedClock_ThreadSafe(t *testing.T) {
	clock := NewFixedClock(Epoch)
	const numGoroutines = 50
	const callsPerGoroutine = 20

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				clock.Advance(time.Second)
				_ = clock.Now()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, Epoch.Add(numGoroutines*callsPerGoroutine*time.Second), clock.Now())
}
