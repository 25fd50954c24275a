package notes

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes the notes store for observability.
type StoreState struct {
	Count   int    `json:"count"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{
		Count:   len(s.notes),
		Loading: s.loading,
		Error:   s.err,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "notes"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
