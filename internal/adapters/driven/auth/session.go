// Package auth holds the signed-in admin session: the bearer token issued
// at login, persisted across CLI invocations.
package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// Ensure Session implements the interface.
var _ driven.SessionStore = (*Session)(nil)

// tokenFile is the session file name inside the config directory.
const tokenFile = "token.json"

// Session is a file-backed SessionStore. The token lives at
// ~/.lawadmin/token.json with owner-only permissions.
type Session struct {
	mu   sync.RWMutex
	path string
	tok  *domain.AccessToken
}

// NewSession creates a session store rooted at configDir.
// If configDir is empty, defaults to ~/.lawadmin. An existing token file
// is loaded; a missing one just means signed out.
func NewSession(configDir string) (*Session, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".lawadmin")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Session{path: filepath.Join(configDir, tokenFile)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Token returns the stored token, or nil if signed out.
func (s *Session) Token() *domain.AccessToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

// Set stores a freshly issued token and persists it.
func (s *Session) Set(tok *domain.AccessToken) error {
	if tok == nil || tok.Token == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}
	s.tok = tok
	return nil
}

// Clear discards the stored token and removes the session file.
// Clearing an already-empty session is not an error.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tok = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Session) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var tok domain.AccessToken
	if err := json.Unmarshal(data, &tok); err != nil {
		// A corrupt session file is treated as signed out rather than
		// wedging every command.
		return os.Remove(s.path)
	}
	if tok.Token != "" {
		s.tok = &tok
	}
	return nil
}
