package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

func TestSession_SetTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSession(dir)
	require.NoError(t, err)
	assert.Nil(t, s.Token())

	tok := &domain.AccessToken{Token: "abc", Expiry: time.Now().Add(time.Hour).UTC()}
	require.NoError(t, s.Set(tok))
	require.NotNil(t, s.Token())
	assert.Equal(t, "abc", s.Token().Token)

	// A fresh store reads the persisted token back.
	s2, err := NewSession(dir)
	require.NoError(t, err)
	require.NotNil(t, s2.Token())
	assert.Equal(t, "abc", s2.Token().Token)
}

func TestSession_SetInvalid(t *testing.T) {
	s, err := NewSession(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Set(nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.Set(&domain.AccessToken{}), domain.ErrInvalidInput)
}

func TestSession_Clear(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSession(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(&domain.AccessToken{Token: "abc"}))
	require.NoError(t, s.Clear())
	assert.Nil(t, s.Token())
	assert.NoFileExists(t, filepath.Join(dir, tokenFile))

	// Clearing twice is fine.
	assert.NoError(t, s.Clear())
}

func TestSession_CorruptFileTreatedAsSignedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("not json"), 0600))

	s, err := NewSession(dir)
	require.NoError(t, err)
	assert.Nil(t, s.Token())
	assert.NoFileExists(t, filepath.Join(dir, tokenFile))
}

func TestSession_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSession(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(&domain.AccessToken{Token: "abc"}))

	info, err := os.Stat(filepath.Join(dir, tokenFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestTokenSourceAdapter(t *testing.T) {
	s, err := NewSession(t.TempDir())
	require.NoError(t, err)
	ts := NewTokenSource(s)

	_, err = ts.Token()
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	require.NoError(t, s.Set(&domain.AccessToken{Token: "abc", Expiry: time.Now().Add(-time.Minute)}))
	_, err = ts.Token()
	assert.ErrorIs(t, err, domain.ErrAuthExpired)

	require.NoError(t, s.Set(&domain.AccessToken{Token: "abc", Expiry: time.Now().Add(time.Hour)}))
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
}
