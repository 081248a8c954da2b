package gateway

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stepClock is a manually advanced time source for throttle tests.
type stepClock struct {
	t time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time          { return c.t }
func (c *stepClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRecentRegistry_SuppressesInsideWindow(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	assert.True(t, r.record("fp"))
	clock.Advance(500 * time.Millisecond)
	assert.False(t, r.record("fp"))
}

func TestRecentRegistry_AllowsAfterWindow(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	assert.True(t, r.record("fp"))
	clock.Advance(900 * time.Millisecond)
	assert.True(t, r.record("fp"))
}

func TestRecentRegistry_SuppressedCallDoesNotRefresh(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	assert.True(t, r.record("fp"))
	clock.Advance(700 * time.Millisecond)
	assert.False(t, r.record("fp"))
	// Only forwarded calls count as seen, so 900ms after the first call
	// the fingerprint is free again even though a duplicate was rejected
	// in between.
	clock.Advance(200 * time.Millisecond)
	assert.True(t, r.record("fp"))
}

func TestRecentRegistry_DistinctFingerprintsIndependent(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	assert.True(t, r.record("a"))
	assert.True(t, r.record("b"))
}

func TestRecentRegistry_PrunesStaleEntriesPastThreshold(t *testing.T) {
	clock := newStepClock()
	window := 800 * time.Millisecond
	r := newRecentRegistry(window, clock.Now)

	for i := 0; i <= pruneThreshold; i++ {
		r.record(fmt.Sprintf("fp-%d", i))
	}
	assert.Equal(t, pruneThreshold+1, r.size())

	// Entries older than 4x the window are purged on the next record once
	// the registry exceeds the threshold.
	clock.Advance(5 * window)
	r.record("fresh")
	assert.Equal(t, 1, r.size())
}

func TestRecentRegistry_NoPruneBelowThreshold(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	for i := 0; i < 10; i++ {
		r.record(fmt.Sprintf("fp-%d", i))
	}
	clock.Advance(time.Hour)
	r.record("fresh")
	assert.Equal(t, 11, r.size())
}

func TestRecentRegistry_Reset(t *testing.T) {
	clock := newStepClock()
	r := newRecentRegistry(800*time.Millisecond, clock.Now)

	r.record("fp")
	r.reset()
	assert.Zero(t, r.size())
	assert.True(t, r.record("fp"))
}
