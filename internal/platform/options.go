package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/notely/pkg/core"
)

// DefaultBaseURL is the address of a locally running notes service.
const DefaultBaseURL = "http://localhost:3000/"

// options holds the internal configuration for a notely App.
type options struct {
	baseURL      string
	stateDir     string
	storage      core.Storage
	api          core.API
	httpClient   *http.Client
	logger       *slog.Logger
	timeout      time.Duration
	publicRoutes []string
	userAgent    string
	ephemeral    bool
	devSafety    bool
}

// Option defines a functional option for configuring an App.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		baseURL:   DefaultBaseURL,
		userAgent: "notely",
		devSafety: true,
	}
}

// WithBaseURL sets the root URL of the remote notes API.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithStateDir sets the directory holding the persisted session.
// Empty means DefaultStateDir.
func WithStateDir(dir string) Option {
	return func(o *options) {
		o.stateDir = dir
	}
}

// WithStorage injects the session storage (e.g. a mock).
// If provided, the state directory is ignored.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithAPI injects the remote API implementation.
// If provided, the HTTP client is not built and WithBaseURL, WithTimeout and
// WithHTTPClient have no effect.
func WithAPI(api core.API) Option {
	return func(o *options) {
		o.api = api
	}
}

// WithHTTPClient sets the http.Client used by the API client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTimeout bounds every API request. Zero keeps the client default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithPublicRoutes replaces the routes reachable without a session.
// Entries may be doublestar patterns.
func WithPublicRoutes(patterns ...string) Option {
	return func(o *options) {
		o.publicRoutes = patterns
	}
}

// WithUserAgent sets the User-Agent sent to the API.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithEphemeral keeps the session in memory only. Nothing is written to
// the state directory.
func WithEphemeral(enabled bool) Option {
	return func(o *options) {
		o.ephemeral = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`. By default (true) the state directory is re-rooted into a
// temporary directory so a development build never touches the real
// session.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
