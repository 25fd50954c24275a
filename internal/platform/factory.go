package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notely/pkg/adapters/httpapi"
	lcadapter "github.com/aretw0/notely/pkg/adapters/lifecycle"
	"github.com/aretw0/notely/pkg/adapters/storage"
	"github.com/aretw0/notely/pkg/core"
	"github.com/aretw0/notely/pkg/notes"
	"github.com/aretw0/notely/pkg/router"
	"github.com/aretw0/notely/pkg/session"
)

// App is the composition root: one instance of every component, wired
// together. Nothing in notely is global; two Apps never share state.
type App struct {
	Storage core.Storage
	API     core.API
	Session *session.Store
	Notes   *notes.Store
	Guard   *router.Guard
	Router  *router.Router

	logger *slog.Logger
}

// New builds an App and loads the persisted session.
//
//	app, err := platform.New(ctx, platform.WithBaseURL("http://localhost:3000/"))
func New(ctx context.Context, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store, err := initStorage(o)
	if err != nil {
		return nil, err
	}

	api, err := initAPI(o, store)
	if err != nil {
		return nil, err
	}

	guard, err := router.NewGuard(o.publicRoutes...)
	if err != nil {
		return nil, err
	}

	sess := session.New(api, store, session.WithLogger(o.logger))
	if err := sess.Init(ctx); err != nil {
		return nil, err
	}

	return &App{
		Storage: store,
		API:     api,
		Session: sess,
		Notes:   notes.New(api, notes.WithLogger(o.logger)),
		Guard:   guard,
		Router:  router.New(guard, sess, router.WithLogger(o.logger)),
		logger:  o.logger,
	}, nil
}

func initStorage(o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}
	if o.ephemeral {
		return storage.NewMemory(), nil
	}

	dir := o.stateDir
	if dir == "" {
		d, err := DefaultStateDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state directory: %w", err)
		}
		dir = d
	}

	useTemp := o.devSafety && IsDevRun()
	resolved := ResolveStateDir(dir, useTemp)
	if useTemp {
		o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "path", resolved)
	}

	return storage.NewFileInDir(resolved, o.logger), nil
}

func initAPI(o *options, store core.Storage) (core.API, error) {
	if o.api != nil {
		return o.api, nil
	}

	clientOpts := []httpapi.Option{
		httpapi.WithLogger(o.logger),
		httpapi.WithHook(httpapi.BearerFromStorage(store)),
		httpapi.WithHook(httpapi.RequestID()),
	}
	if o.userAgent != "" {
		clientOpts = append(clientOpts, httpapi.WithHook(httpapi.UserAgent(o.userAgent)))
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, httpapi.WithHTTPClient(o.httpClient))
	}
	if o.timeout > 0 {
		clientOpts = append(clientOpts, httpapi.WithTimeout(o.timeout))
	}

	client, err := httpapi.New(o.baseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build api client: %w", err)
	}
	return client, nil
}

// Navigate resolves path through the route guard.
func (a *App) Navigate(path string) string {
	return a.Router.Navigate(path)
}

// WatchSession follows the session storage for changes made by other
// processes. Each event is preceded by a Session.Sync, so the store is
// already up to date when the event is delivered. It fails when the
// storage cannot be watched (e.g. in-memory storage).
func (a *App) WatchSession(ctx context.Context) (lifecycle.Source, error) {
	w, ok := a.Storage.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("session storage does not support watching")
	}

	raw, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	return lcadapter.NewSource(raw, func(ctx context.Context, e core.StorageEvent) {
		if _, err := a.Session.Sync(ctx); err != nil {
			a.logger.Error("failed to sync session", "error", err)
		}
	}), nil
}

// State collects the introspection state of every component, keyed by
// component type.
func (a *App) State() map[string]any {
	out := make(map[string]any)
	for _, c := range []any{a.Storage, a.API, a.Session, a.Notes} {
		intro, ok := c.(introspection.Introspectable)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%T", c)
		if comp, ok := c.(introspection.Component); ok {
			key = comp.ComponentType()
		}
		out[key] = intro.State()
	}
	return out
}
