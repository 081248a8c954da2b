package gateway

import (
	"sync"
	"time"
)

// Registry sizing. Entries older than pruneAgeFactor times the throttle
// window are purged opportunistically whenever the registry grows past
// pruneThreshold, bounding memory for the life of the session.
const (
	pruneThreshold = 500
	pruneAgeFactor = 4
)

// recentRegistry maps request fingerprints to their last-seen time.
// It lives for the application session and is reset on Gateway.Reset.
type recentRegistry struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

func newRecentRegistry(window time.Duration, now func() time.Time) *recentRegistry {
	return &recentRegistry{
		seen:   make(map[string]time.Time),
		window: window,
		now:    now,
	}
}

// record reports whether a call with this fingerprint may proceed.
// A call inside the throttle window is suppressed and does NOT refresh
// the timestamp: only forwarded calls count as "seen".
func (r *recentRegistry) record(fp string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	if last, ok := r.seen[fp]; ok && now.Sub(last) < r.window {
		return false
	}
	r.seen[fp] = now
	return true
}

// pruneLocked drops stale entries once the registry grows past the
// threshold. Caller must hold the lock.
func (r *recentRegistry) pruneLocked(now time.Time) {
	if len(r.seen) <= pruneThreshold {
		return
	}
	cutoff := now.Add(-pruneAgeFactor * r.window)
	for fp, last := range r.seen {
		if last.Before(cutoff) {
			delete(r.seen, fp)
		}
	}
}

// reset discards all entries.
func (r *recentRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = make(map[string]time.Time)
}

// size returns the number of tracked fingerprints.
func (r *recentRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
