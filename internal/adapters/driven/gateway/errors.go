package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// CancelReason distinguishes the deliberate client-side cancellations the
// request gate can produce. Callers must treat these as suppression, not
// as backend failures: no error toast, no retry.
type CancelReason string

const (
	// ReasonThrottled marks a rapid duplicate suppressed by the throttle
	// check.
	ReasonThrottled CancelReason = "throttled_duplicate"
	// ReasonTokenExpired marks a call short-circuited because the stored
	// token was already expired.
	ReasonTokenExpired CancelReason = "token_expired"
)

// CancelledError is a synthetic cancellation raised by the request gate
// before the call reaches the network.
type CancelledError struct {
	Reason CancelReason
	// Fingerprint is set for throttled duplicates.
	Fingerprint string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("request cancelled: %s", e.Reason)
}

// Is maps cancellation reasons onto the domain sentinels so callers can
// use errors.Is without importing this package.
func (e *CancelledError) Is(target error) bool {
	switch e.Reason {
	case ReasonThrottled:
		return target == domain.ErrThrottled
	case ReasonTokenExpired:
		return target == domain.ErrAuthExpired
	}
	return false
}

// StatusError is a non-2xx backend response, passed through to the caller
// unchanged in shape.
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.URL)
}

// Is maps well-known status codes onto the domain sentinels.
func (e *StatusError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == domain.ErrUnauthorized
	case http.StatusNotFound:
		return target == domain.ErrNotFound
	case http.StatusTooManyRequests:
		return target == domain.ErrRateLimited
	}
	return false
}

// IsCancelled returns true if the error is a synthetic cancellation raised
// by the request gate (either kind).
func IsCancelled(err error) bool {
	var c *CancelledError
	return errors.As(err, &c)
}

// IsThrottled returns true if the error is a suppressed-duplicate
// cancellation.
func IsThrottled(err error) bool {
	var c *CancelledError
	return errors.As(err, &c) && c.Reason == ReasonThrottled
}

// IsTokenExpired returns true if the error is a stale-credential
// cancellation.
func IsTokenExpired(err error) bool {
	var c *CancelledError
	return errors.As(err, &c) && c.Reason == ReasonTokenExpired
}

// IsUnauthorized returns true if the error carries a 401 status.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
