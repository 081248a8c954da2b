package api

import (
	"context"
	"fmt"
	"time"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// tokenResponse is the wire shape of a successful login.
type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r *tokenResponse) toDomain() (*domain.AccessToken, error) {
	if r.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &domain.AccessToken{Token: r.Token, Expiry: r.ExpiresAt}, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	var resp tokenResponse
	err := c.postJSON(ctx, "/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return resp.toDomain()
}

// ConfirmTwoFactor completes a login that required a 2FA code.
func (c *Client) ConfirmTwoFactor(ctx context.Context, email, code string) (*domain.AccessToken, error) {
	var resp tokenResponse
	err := c.postJSON(ctx, "/auth/2fa/confirm", map[string]any{
		"email": email,
		"code":  code,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("confirm 2fa: %w", err)
	}
	return resp.toDomain()
}
