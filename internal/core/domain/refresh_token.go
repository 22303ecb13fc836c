package domain

import "time"

// RefreshToken is the opaque credential issued alongside a JWT on login.
// Expiry is checked lazily at redemption; no background sweep exists.
type RefreshToken struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
