package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what can be read from the token without verifying it.
// The client never holds the signing key, so none of this is trusted for
// authorization; it is only shown to the user.
type Claims struct {
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the token carried an expiry that is before now.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Claims decodes the current token as a JWT. ok is false when there is no
// token or it is not a JWT; opaque tokens are perfectly valid sessions.
func (s *Store) Claims() (Claims, bool) {
	token := s.Token()
	if token == "" {
		return Claims{}, false
	}

	registered := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, registered); err != nil {
		return Claims{}, false
	}

	c := Claims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		t := registered.IssuedAt.Time
		c.IssuedAt = &t
	}
	if registered.ExpiresAt != nil {
		t := registered.ExpiresAt.Time
		c.ExpiresAt = &t
	}
	return c, true
}
