package domain

import "time"

// AccessToken represents the bearer token issued by the admin API at login.
type AccessToken struct {
	// Token is the raw bearer token for API access.
	Token string `json:"token"`
	// Expiry is when the token stops being accepted.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the token has expired.
// A zero expiry means the token does not expire client-side.
func (t *AccessToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}
