package platform_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notely/internal/fakeapi"
	"github.com/aretw0/notely/internal/platform"
	"github.com/aretw0/notely/pkg/adapters/storage"
	"github.com/aretw0/notely/pkg/core"
	"github.com/aretw0/notely/pkg/router"
)

func newApp(t *testing.T, opts ...platform.Option) (*platform.App, *fakeapi.Server, string) {
	t.Helper()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	stateDir := t.TempDir()
	base := []platform.Option{
		platform.WithBaseURL(srv.URL),
		platform.WithStateDir(stateDir),
	}
	app, err := platform.New(context.Background(), append(base, opts...)...)
	require.NoError(t, err)
	return app, fake, stateDir
}

func TestNew_EndToEnd(t *testing.T) {
	ctx := context.Background()
	app, fake, stateDir := newApp(t)
	fake.AddUser("a@b.com", "A", "x")

	assert.Equal(t, router.LoginPath, app.Navigate(router.HomePath))

	res := app.Session.Login(ctx, core.LoginCredentials{Email: "a@b.com", Password: "x"})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, router.HomePath, app.Navigate(router.HomePath))

	_, err := os.Stat(filepath.Join(stateDir, storage.DefaultFileName))
	require.NoError(t, err, "token must be persisted in the state dir")

	require.True(t, app.Notes.Create(ctx, core.NoteDraft{Title: "T", Content: "C"}).Success)
	app.Notes.Fetch(ctx)
	require.Empty(t, app.Notes.Error())
	assert.Len(t, app.Notes.Notes(), 1)

	// A second App over the same state dir starts logged in.
	again, err := platform.New(ctx,
		platform.WithBaseURL("http://unused.test/"),
		platform.WithStateDir(stateDir),
	)
	require.NoError(t, err)
	assert.True(t, again.Session.IsAuthenticated())

	app.Session.Logout(ctx)
	assert.Equal(t, router.LoginPath, app.Navigate(router.HomePath))
}

func TestNew_Options(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Base URL", func(t *testing.T) {
		_, err := platform.New(ctx, platform.WithBaseURL("localhost"), platform.WithEphemeral(true))
		assert.Error(t, err)
	})

	t.Run("Invalid Public Route", func(t *testing.T) {
		_, err := platform.New(ctx, platform.WithPublicRoutes("/["), platform.WithEphemeral(true))
		assert.Error(t, err)
	})

	t.Run("Injected Storage", func(t *testing.T) {
		mem := storage.NewMemory()
		require.NoError(t, mem.Set(ctx, core.TokenKey, "tok1"))

		app, err := platform.New(ctx, platform.WithStorage(mem))
		require.NoError(t, err)
		assert.Equal(t, "tok1", app.Session.Token())
	})

	t.Run("Public Routes", func(t *testing.T) {
		app, err := platform.New(ctx,
			platform.WithEphemeral(true),
			platform.WithPublicRoutes("/login", "/help/**"),
		)
		require.NoError(t, err)
		assert.Equal(t, "/help/x", app.Navigate("/help/x"))
		assert.Equal(t, router.LoginPath, app.Navigate("/"))
	})
}

func TestApp_State(t *testing.T) {
	app, _, _ := newApp(t)
	st := app.State()
	assert.Contains(t, st, "session")
	assert.Contains(t, st, "notes")
	assert.Contains(t, st, "storage")
	assert.Contains(t, st, "api-client")
}

func TestApp_WatchSession(t *testing.T) {
	app, _, stateDir := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := app.WatchSession(ctx)
	require.NoError(t, err)
	require.NoError(t, src.Start(ctx))

	// Another process logs in.
	other := storage.NewFileInDir(stateDir, nil)
	require.NoError(t, other.Set(ctx, core.TokenKey, "tok-from-elsewhere"))

	select {
	case <-src.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for session event")
	}
	assert.Equal(t, "tok-from-elsewhere", app.Session.Token())
}

func TestApp_WatchSession_Memory(t *testing.T) {
	app, err := platform.New(context.Background(), platform.WithEphemeral(true))
	require.NoError(t, err)
	_, err = app.WatchSession(context.Background())
	assert.Error(t, err)
}
