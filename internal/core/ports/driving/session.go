package driving

import (
	"context"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// SessionService manages the signed-in admin session.
type SessionService interface {
	// Login signs in with email/password and stores the issued token.
	Login(ctx context.Context, email, password string) error

	// ConfirmTwoFactor completes a pending 2FA login.
	ConfirmTwoFactor(ctx context.Context, email, code string) error

	// Logout discards the stored token.
	Logout() error

	// Status returns the stored token, or nil if signed out.
	// An expired token is still returned; callers decide how to present it.
	Status() *domain.AccessToken
}
