package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aretw0/notely/pkg/core"
)

// BearerFromStorage attaches "Authorization: Bearer <token>" when the
// storage holds a non-empty token. The token is read on every request, so
// a login or logout takes effect on the next call without rebuilding the
// client.
func BearerFromStorage(s core.Storage) RequestHook {
	return func(req *http.Request) error {
		token, ok, err := s.Get(req.Context(), core.TokenKey)
		if err != nil {
			return err
		}
		if ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// RequestID tags each request with a fresh X-Request-ID unless the caller
// already set one.
func RequestID() RequestHook {
	return func(req *http.Request) error {
		if req.Header.Get("X-Request-ID") == "" {
			req.Header.Set("X-Request-ID", uuid.NewString())
		}
		return nil
	}
}

// UserAgent sets the User-Agent header.
func UserAgent(ua string) RequestHook {
	return func(req *http.Request) error {
		req.Header.Set("User-Agent", ua)
		return nil
	}
}
