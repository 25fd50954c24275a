package session

import (
	"time"

	"github.com/aretw0/introspection"
)

// SessionState exposes the session for observability. The token itself is never
// included.
type SessionState struct {
	Authenticated bool    `json:"authenticated"`
	Claims        *Claims `json:"claims,omitempty"`
	Expired       bool    `json:"expired,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	st := SessionState{Authenticated: s.IsAuthenticated()}
	if c, ok := s.Claims(); ok {
		st.Claims = &c
		st.Expired = c.Expired(time.Now())
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
