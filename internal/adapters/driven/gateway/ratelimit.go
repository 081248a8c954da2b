package gateway

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds client-side rate limiting for the admin API.
// This rides alongside duplicate suppression: the throttle check stops
// identical calls, the bucket caps overall request volume.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is deliberately generous; it exists as a backstop so a
// scripted caller cannot hammer the backend, not as a tuning knob.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20.0, BurstSize: 40}

// rateLimiter is a token bucket with backoff honouring 429 responses.
type rateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// wait blocks until a request can be made without exceeding the rate
// limit. It also respects any backoff period set by recordRateLimitError.
func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// recordRateLimitError sets a backoff period after a 429 response.
func (r *rateLimiter) recordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 30
	}
	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}
