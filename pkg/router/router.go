// Package router decides which client route a navigation ends up on.
//
// Only two routes exist: the home view at "/" which needs a session, and
// the login view at "/login" which does not. The Guard is a pure function of
// the target path and the authentication flag; the Router binds it to a live
// session.
package router

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// Route paths.
const (
	HomePath  = "/"
	LoginPath = "/login"
)

// Route is an entry of the route table.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Routes is the client route table.
var Routes = []Route{
	{Path: HomePath, Name: "home", RequiresAuth: true},
	{Path: LoginPath, Name: "login"},
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// DefaultPublic is the allow-list used when none is configured.
var DefaultPublic = []string{LoginPath}

// Decision is the outcome of a navigation.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Target is where the navigation ends up.
func (d Decision) Target(requested string) string {
	if d.Allowed {
		return requested
	}
	return d.Redirect
}

// Guard redirects unauthenticated navigations to the login route.
type Guard struct {
	public []string
}

// NewGuard builds a guard with the given public patterns. Patterns use
// doublestar syntax, e.g. "/docs/**". An empty list falls back to
// DefaultPublic.
func NewGuard(public ...string) (*Guard, error) {
	if len(public) == 0 {
		public = DefaultPublic
	}
	for _, p := range public {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid public route pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	return &Guard{public: append([]string(nil), public...)}, nil
}

// IsPublic reports whether path matches the allow-list.
func (g *Guard) IsPublic(path string) bool {
	for _, p := range g.public {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Decide allows the navigation unless path is not public and the user is
// not authenticated, in which case it redirects to LoginPath.
func (g *Guard) Decide(path string, authenticated bool) Decision {
	if !g.IsPublic(path) && !authenticated {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Allowed: true}
}

// Session is the part of the session store the router reads.
type Session interface {
	IsAuthenticated() bool
}

// Router evaluates the guard against a live session.
type Router struct {
	guard   *Guard
	session Session
	logger  *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger for the router.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// New binds guard to session.
func New(guard *Guard, session Session, opts ...Option) *Router {
	r := &Router{guard: guard, session: session}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Navigate returns the path the user lands on when asking for path.
func (r *Router) Navigate(path string) string {
	d := r.guard.Decide(path, r.session.IsAuthenticated())
	if !d.Allowed {
		r.logger.Debug("navigation redirected", "path", path, "redirect", d.Redirect)
	}
	return d.Target(path)
}
