package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages the signed-in admin session.
type SessionService struct {
	api   driven.AuthAPI
	store driven.SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(api driven.AuthAPI, store driven.SessionStore) *SessionService {
	return &SessionService{
		api:   api,
		store: store,
	}
}

// Login signs in with email/password and stores the issued token.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	if err := s.store.Set(token); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}

	logger.Debug("Session established for %s", email)
	return nil
}

// ConfirmTwoFactor completes a pending 2FA login.
func (s *SessionService) ConfirmTwoFactor(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return fmt.Errorf("email and code are required: %w", domain.ErrInvalidInput)
	}

	token, err := s.api.ConfirmTwoFactor(ctx, email, code)
	if err != nil {
		return fmt.Errorf("confirming 2FA code: %w", err)
	}

	if err := s.store.Set(token); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}

	logger.Debug("Two-factor login completed for %s", email)
	return nil
}

// Logout discards the stored token.
func (s *SessionService) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Status returns the stored token, or nil if signed out.
func (s *SessionService) Status() *domain.AccessToken {
	return s.store.Token()
}
