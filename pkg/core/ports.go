package core

import (
	"context"
	"encoding/json"
)

// TokenKey is the storage key holding the session token.
const TokenKey = "token"

// Storage defines the contract for the small persistent key-value store
// that holds session state. Adhering to this interface keeps the stores
// independent of where the token actually lives (file, memory, keychain).
type Storage interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Watchable defines storages that can report external modifications.
type Watchable interface {
	// Watch emits an event every time the underlying storage changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan StorageEvent, error)
}

// LoginResponse is the success body of the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// API defines the remote notes service as consumed by the stores.
//
// Note endpoints return the raw response body so the caller can run the
// shape guard before trusting it.
type API interface {
	Login(ctx context.Context, creds LoginCredentials) (LoginResponse, error)
	Register(ctx context.Context, creds RegisterCredentials) error
	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, draft NoteDraft) (json.RawMessage, error)
	UpdateNote(ctx context.Context, id string, patch NotePatch) (json.RawMessage, error)
	DeleteNote(ctx context.Context, id string) error
}
