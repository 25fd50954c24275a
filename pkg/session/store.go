// Package session holds the authentication state of a notely client.
//
// A Store owns the bearer token. The token lives in memory and in a
// core.Storage at the same time; every mutation updates both so they never
// drift apart. Authentication is nothing more than "the token is non-empty".
//
// Stores are explicit objects: build one with New, load the persisted token
// with Init, and tear it down in tests with Reset.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/notely/pkg/core"
)

// Store is the auth session store.
type Store struct {
	api     core.API
	storage core.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an unauthenticated store. Call Init to pick up a token
// persisted by a previous run.
func New(api core.API, storage core.Storage, opts ...Option) *Store {
	s := &Store{api: api, storage: storage}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Init loads the persisted token into memory.
func (s *Store) Init(ctx context.Context) error {
	token, _, err := s.storage.Get(ctx, core.TokenKey)
	if err != nil {
		return fmt.Errorf("failed to load session token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Debug("session initialized", "authenticated", token != "")
	return nil
}

// Sync re-reads the persisted token. Use it when another process changed
// the storage (see core.Watchable). It reports whether the token changed.
func (s *Store) Sync(ctx context.Context) (bool, error) {
	token, _, err := s.storage.Get(ctx, core.TokenKey)
	if err != nil {
		return false, fmt.Errorf("failed to sync session token: %w", err)
	}

	s.mu.Lock()
	changed := s.token != token
	s.token = token
	s.mu.Unlock()

	if changed {
		s.logger.Debug("session changed externally", "authenticated", token != "")
	}
	return changed, nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Login exchanges credentials for a token and persists it.
// On failure the session is left untouched and the result carries the
// server's message, or MsgInvalidCredentials when there is none.
func (s *Store) Login(ctx context.Context, creds core.LoginCredentials) core.Result {
	resp, err := s.api.Login(ctx, creds)
	if err == nil && resp.AccessToken == "" {
		err = core.ErrEmptyToken
	}
	if err != nil {
		s.logger.Debug("login failed", "error", err)
		if msg, ok := core.ServerMessage(err); ok {
			return core.Fail(msg)
		}
		return core.Fail(core.MsgInvalidCredentials)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.token
	s.token = resp.AccessToken
	if err := s.storage.Set(ctx, core.TokenKey, resp.AccessToken); err != nil {
		s.token = previous
		s.logger.Error("failed to persist session token", "error", err)
		return core.Fail(core.MsgInvalidCredentials)
	}

	s.logger.Info("logged in", "email", creds.Email)
	return core.OK()
}

// Register creates an account. It never changes the session; the user
// still has to log in afterwards.
func (s *Store) Register(ctx context.Context, creds core.RegisterCredentials) core.Result {
	if err := s.api.Register(ctx, creds); err != nil {
		s.logger.Debug("registration failed", "error", err)
		return core.Fail(core.MsgRegistrationFailed)
	}
	s.logger.Info("registered", "email", creds.Email)
	return core.OK()
}

// Logout forgets the token in memory and in storage. It is idempotent.
// A storage failure is logged; the in-memory token is cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := s.storage.Remove(ctx, core.TokenKey); err != nil {
		s.logger.Error("failed to remove persisted session token", "error", err)
		return
	}
	s.logger.Debug("logged out")
}

// Reset clears the in-memory token without touching storage.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// RequireAuth returns ErrNotAuthenticated when no token is held.
func (s *Store) RequireAuth() error {
	if !s.IsAuthenticated() {
		return core.ErrNotAuthenticated
	}
	return nil
}

// IsNotAuthenticated reports whether err stems from a missing session.
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, core.ErrNotAuthenticated)
}
