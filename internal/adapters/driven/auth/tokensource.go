package auth

import (
	"golang.org/x/oauth2"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// TokenSourceAdapter adapts a SessionStore to oauth2.TokenSource so the
// session can plug into oauth2-based HTTP stacks (oauth2.NewClient,
// library SDKs taking a TokenSource).
type TokenSourceAdapter struct {
	store driven.SessionStore
}

// NewTokenSource creates an oauth2.TokenSource backed by the session.
func NewTokenSource(store driven.SessionStore) oauth2.TokenSource {
	return &TokenSourceAdapter{store: store}
}

// Token implements oauth2.TokenSource. Admin tokens have no refresh
// flow, so an expired session surfaces as ErrAuthExpired and the user
// must sign in again.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	tok := t.store.Token()
	if tok == nil || tok.Token == "" {
		return nil, domain.ErrAuthRequired
	}
	if tok.IsExpired() {
		return nil, domain.ErrAuthExpired
	}

	return &oauth2.Token{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		Expiry:      tok.Expiry,
	}, nil
}
