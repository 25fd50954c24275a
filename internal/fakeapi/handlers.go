package fakeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aretw0/notely/pkg/core"
)

// TokenTTL is the lifetime of tokens issued by the login endpoint.
const TokenTTL = 24 * time.Hour

type contextKey string

const subjectKey contextKey = "subject"

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			Header:      r.Header.Clone(),
			Body:        string(body),
		})
		s.mu.Unlock()

		s.logger.Debug("fake api request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) stubbed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		stub, ok := s.stubs[key]
		var resp StubResponse
		if ok {
			resp = *stub
			if stub.Times > 0 {
				stub.Times--
				if stub.Times == 0 {
					delete(s.stubs, key)
				}
			}
		}
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if resp.Delay > 0 {
			select {
			case <-time.After(resp.Delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		_, _ = io.WriteString(w, resp.Body)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.secret, nil
		}, jwt.WithTimeFunc(s.now))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds core.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed body")
		return
	}

	s.mu.Lock()
	u, ok := s.users[creds.Email]
	s.mu.Unlock()
	if !ok || u.Password != creds.Password {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.IssueToken(u.Email, TokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, core.LoginResponse{AccessToken: token})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds core.RegisterCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed body")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[creds.Email]; exists {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	s.users[creds.Email] = user{Email: creds.Email, Name: creds.Name, Password: creds.Password}
	writeJSON(w, http.StatusCreated, map[string]string{"email": creds.Email, "name": creds.Name})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Notes())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft core.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed body")
		return
	}

	s.mu.Lock()
	n := s.newNote(draft.Title, draft.Content)
	s.notes = append(s.notes, n)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch core.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.notes[i].Content = *patch.Content
		}
		now := s.now().UTC()
		s.notes[i].UpdatedAt = &now
		writeJSON(w, http.StatusOK, s.notes[i])
		return
	}
	writeError(w, http.StatusNotFound, "Note not found")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Note not found")
}
