package driven

import "github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"

// SessionStore holds the bearer token for the signed-in admin session.
//
// The store is referenced, not owned, by the request gateway: the gateway
// consults it on every call and clears it when the token expires or the
// backend answers 401. Only a completed login mutates it otherwise.
type SessionStore interface {
	// Token returns the stored token, or nil if signed out.
	Token() *domain.AccessToken

	// Set stores a freshly issued token.
	Set(token *domain.AccessToken) error

	// Clear discards the stored token.
	// Clearing an already-empty store is not an error.
	Clear() error
}
