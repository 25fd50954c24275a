// Package notes holds the client-side list of notes fetched from the remote
// API.
//
// The Store is the only owner of the list. It never persists notes locally
// and never mutates the list before the server has answered. Every action
// reports its outcome as a core.Result; the underlying error is logged at
// debug level and replaced by a fixed message.
package notes

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/notely/pkg/core"
)

// Store is the notes store.
type Store struct {
	api    core.API
	logger *slog.Logger

	mu      sync.RWMutex
	notes   []core.Note
	loading bool
	err     string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty store backed by api.
func New(api core.API, opts ...Option) *Store {
	s := &Store{api: api, notes: []core.Note{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Notes returns a copy of the list, in server order.
func (s *Store) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Loading reports whether a Fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the message of the last failed Fetch, or "".
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Fetch replaces the list with the server's. On failure the list is kept
// and Error reports MsgFetchFailed. Loading is false once Fetch returns.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	list, err := s.api.ListNotes(ctx)
	if err != nil {
		s.logger.Debug("fetch notes failed", "error", err)
		s.mu.Lock()
		s.err = core.MsgFetchFailed
		s.mu.Unlock()
		return
	}
	if list == nil {
		list = []core.Note{}
	}

	s.mu.Lock()
	s.notes = list
	s.mu.Unlock()
	s.logger.Debug("notes fetched", "count", len(list))
}

// Create posts draft and appends the server's note.
func (s *Store) Create(ctx context.Context, draft core.NoteDraft) core.Result {
	raw, err := s.api.CreateNote(ctx, draft)
	if err != nil {
		s.logger.Debug("create note failed", "error", err)
		return core.Fail(core.MsgCreateFailed)
	}

	note, err := core.DecodeNote(raw)
	if err != nil {
		s.logger.Debug("create note: bad server answer", "error", err)
		return core.Fail(core.MsgBadServerAnswer)
	}

	s.mu.Lock()
	s.notes = append(s.notes, note)
	s.mu.Unlock()
	return core.OK()
}

// Update sends patch to the note with the given id. The local entry that is
// replaced is the one whose ID equals patch.ID; nothing is replaced when
// patch.ID is nil or matches no entry.
func (s *Store) Update(ctx context.Context, id string, patch core.NotePatch) core.Result {
	raw, err := s.api.UpdateNote(ctx, id, patch)
	if err != nil {
		s.logger.Debug("update note failed", "id", id, "error", err)
		return core.Fail(core.MsgUpdateFailed)
	}

	note, err := core.DecodeNote(raw)
	if err != nil {
		s.logger.Debug("update note: bad server answer", "id", id, "error", err)
		return core.Fail(core.MsgBadServerAnswer)
	}

	if patch.ID == nil {
		return core.OK()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(*patch.ID); i >= 0 {
		s.notes[i] = note
	}
	return core.OK()
}

// Delete removes the note from the server, then the first local entry with
// that id. Later entries sharing the id are kept.
func (s *Store) Delete(ctx context.Context, id string) core.Result {
	if err := s.api.DeleteNote(ctx, id); err != nil {
		s.logger.Debug("delete note failed", "id", id, "error", err)
		return core.Fail(core.MsgDeleteFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	}
	return core.OK()
}

// Reset empties the store.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = []core.Note{}
	s.loading = false
	s.err = ""
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}
