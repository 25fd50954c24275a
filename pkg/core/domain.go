// Package core holds the domain types of notely and the ports its stores
// depend on. It imports nothing beyond the standard library.
package core

import "fmt"

// EventType represents the type of change in the session storage.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// StorageEvent represents an external change to the session storage.
type StorageEvent struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e StorageEvent) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
