// Package fakeapi provides an in-memory implementation of the remote notes
// REST API for tests and local development.
//
// It speaks the same endpoint table as the real service (auth/login,
// auth/register and the notes CRUD), issues HS256 JWT access tokens, and
// records every request it sees. Stub responses can be registered per
// method and path to inject failures such as rejected requests or malformed
// bodies.
//
// The server is plain net/http, so it works both behind httptest.NewServer
// and a real listener (see the `notely devserver` command).
package fakeapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aretw0/notely/pkg/core"
)

// StubResponse is a canned answer for one method and path.
type StubResponse struct {
	Status int
	Body   string
	// Delay is applied before answering.
	Delay time.Duration
	// Times limits how many requests the stub serves. Zero means forever.
	Times int
}

// RecordedRequest is a request as seen by the server.
type RecordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	Header      http.Header
	Body        string
}

type user struct {
	Email    string
	Name     string
	Password string
}

// Server is a fake notes API. The zero value is not usable; call New.
type Server struct {
	mu       sync.Mutex
	users    map[string]user
	notes    []core.Note
	stubs    map[string]*StubResponse
	requests []RecordedRequest
	secret   []byte
	now      func() time.Time
	logger   *slog.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSecret sets the HMAC secret used to sign access tokens.
func WithSecret(secret []byte) Option {
	return func(s *Server) {
		s.secret = secret
	}
}

// WithClock overrides the time source for timestamps and token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates an empty fake API.
func New(opts ...Option) *Server {
	s := &Server{
		users:  make(map[string]user),
		stubs:  make(map[string]*StubResponse),
		secret: []byte("notely-fake-api"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.stubbed)

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)

	r.Route("/notes", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddUser registers an account directly.
func (s *Server) AddUser(email, name, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = user{Email: email, Name: name, Password: password}
}

// SeedNote stores a note as if it had been created through the API.
func (s *Server) SeedNote(title, content string) core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.newNote(title, content)
	s.notes = append(s.notes, n)
	return n
}

// Notes returns a copy of the server-side notes.
func (s *Server) Notes() []core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Stub makes the server answer method+path with resp instead of the real
// handler. path is the request path, e.g. "/notes/42".
func (s *Server) Stub(method, path string, resp StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := resp
	s.stubs[method+" "+path] = &r
}

// ClearStubs removes all registered stubs.
func (s *Server) ClearStubs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs = make(map[string]*StubResponse)
}

// Requests returns every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// IssueToken signs an access token for email, valid for ttl.
func (s *Server) IssueToken(email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) newNote(title, content string) core.Note {
	now := s.now().UTC()
	return core.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError mimics the NestJS error body the real service sends.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"statusCode": status,
		"message":    msg,
	})
}
