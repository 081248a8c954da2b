package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_IsExpired(t *testing.T) {
	tests := []struct {
		name     string
		expiry   time.Time
		expected bool
	}{
		{"zero expiry never expires", time.Time{}, false},
		{"future expiry", time.Now().Add(time.Hour), false},
		{"past expiry", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &AccessToken{Token: "abc", Expiry: tt.expiry}
			assert.Equal(t, tt.expected, tok.IsExpired())
		})
	}
}
