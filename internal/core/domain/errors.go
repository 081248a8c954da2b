package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication Errors.

	// ErrAuthRequired indicates the operation requires a signed-in session
	// but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the stored token has expired.
	// The session must sign in again; no refresh flow exists for admin tokens.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrUnauthorized indicates the backend rejected the credentials (401).
	ErrUnauthorized = errors.New("unauthorised")

	// Gateway Errors.

	// ErrThrottled indicates a call was suppressed as a rapid duplicate.
	// This is a deliberate client-side cancellation, not a backend failure.
	ErrThrottled = errors.New("throttled duplicate request")

	// ErrRateLimited indicates the API rate limit was exceeded (429).
	ErrRateLimited = errors.New("rate limited")
)
