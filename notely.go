package notely

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/notely/internal/platform"
	"github.com/aretw0/notely/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// App is a wired notely client.
type App = platform.App

// Config is the on-disk configuration.
type Config = platform.Config

// Note is a note as stored by the remote service.
type Note = core.Note

// NoteDraft is a note that has not been created yet.
type NoteDraft = core.NoteDraft

// NotePatch is a partial note sent on update.
type NotePatch = core.NotePatch

// LoginCredentials are sent to log in.
type LoginCredentials = core.LoginCredentials

// RegisterCredentials are sent to create an account.
type RegisterCredentials = core.RegisterCredentials

// Result is the outcome of a store action.
type Result = core.Result

// --- Configuration ---

// Option defines a functional option for configuring an App.
type Option = platform.Option

// DefaultBaseURL is the address of a locally running notes service.
const DefaultBaseURL = platform.DefaultBaseURL

// WithBaseURL sets the root URL of the remote notes API.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithStateDir sets the directory holding the persisted session.
func WithStateDir(dir string) Option {
	return platform.WithStateDir(dir)
}

// WithStorage injects the session storage.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithAPI injects the remote API implementation.
func WithAPI(api core.API) Option {
	return platform.WithAPI(api)
}

// WithHTTPClient sets the http.Client used by the API client.
func WithHTTPClient(hc *http.Client) Option {
	return platform.WithHTTPClient(hc)
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithTimeout bounds every API request.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithPublicRoutes replaces the routes reachable without a session.
func WithPublicRoutes(patterns ...string) Option {
	return platform.WithPublicRoutes(patterns...)
}

// WithUserAgent sets the User-Agent sent to the API.
func WithUserAgent(ua string) Option {
	return platform.WithUserAgent(ua)
}

// WithEphemeral keeps the session in memory only.
func WithEphemeral(enabled bool) Option {
	return platform.WithEphemeral(enabled)
}

// WithDevSafety controls the sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates an App and loads the persisted session.
func New(ctx context.Context, opts ...Option) (*App, error) {
	return platform.New(ctx, opts...)
}

// --- Config ---

// LoadConfig reads a YAML config file. A missing file yields an empty Config.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// ResolveConfig finds and loads the config that applies to workDir.
func ResolveConfig(explicit, workDir string) (Config, error) {
	return platform.ResolveConfig(explicit, workDir)
}

// --- Safety & Utils ---

// ResolveStateDir determines the actual state directory based on safety rules.
func ResolveStateDir(userDir string, forceTemp bool) string {
	return platform.ResolveStateDir(userDir, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// IsNote reports whether v has the shape of a server note.
func IsNote(v any) bool {
	return core.IsNote(v)
}
