package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notely/pkg/adapters/storage"
	"github.com/aretw0/notely/pkg/core"
	"github.com/aretw0/notely/pkg/session"
)

// MockAPI implements core.API for the auth endpoints only.
type MockAPI struct {
	LoginResp   core.LoginResponse
	LoginErr    error
	RegisterErr error
	Logins      []core.LoginCredentials
	Registers   []core.RegisterCredentials
}

func (m *MockAPI) Login(ctx context.Context, creds core.LoginCredentials) (core.LoginResponse, error) {
	m.Logins = append(m.Logins, creds)
	return m.LoginResp, m.LoginErr
}

func (m *MockAPI) Register(ctx context.Context, creds core.RegisterCredentials) error {
	m.Registers = append(m.Registers, creds)
	return m.RegisterErr
}

func (m *MockAPI) ListNotes(ctx context.Context) ([]core.Note, error) { return nil, nil }
func (m *MockAPI) CreateNote(ctx context.Context, d core.NoteDraft) (json.RawMessage, error) {
	return nil, nil
}
func (m *MockAPI) UpdateNote(ctx context.Context, id string, p core.NotePatch) (json.RawMessage, error) {
	return nil, nil
}
func (m *MockAPI) DeleteNote(ctx context.Context, id string) error { return nil }

// serverError mimics an adapter error carrying a server message.
type serverError struct{ msg string }

func (e serverError) Error() string         { return "rejected: " + e.msg }
func (e serverError) ServerMessage() string { return e.msg }

// FailingStorage rejects every write.
type FailingStorage struct {
	*storage.Memory
}

func (f FailingStorage) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func (f FailingStorage) Remove(ctx context.Context, key string) error {
	return errors.New("read-only filesystem")
}

func persisted(t *testing.T, s core.Storage) (string, bool) {
	t.Helper()
	v, ok, err := s.Get(context.Background(), core.TokenKey)
	require.NoError(t, err)
	return v, ok
}

func TestLogin_Success(t *testing.T) {
	api := &MockAPI{LoginResp: core.LoginResponse{AccessToken: "tok1"}}
	mem := storage.NewMemory()
	s := session.New(api, mem)

	res := s.Login(context.Background(), core.LoginCredentials{Email: "a@b.com", Password: "x"})

	assert.True(t, res.Success)
	assert.Equal(t, "tok1", s.Token())
	assert.True(t, s.IsAuthenticated())
	v, ok := persisted(t, mem)
	assert.True(t, ok)
	assert.Equal(t, "tok1", v)
	assert.Equal(t, []core.LoginCredentials{{Email: "a@b.com", Password: "x"}}, api.Logins)
}

func TestLogin_Failure(t *testing.T) {
	t.Run("Server Message", func(t *testing.T) {
		api := &MockAPI{LoginErr: serverError{"Invalid email or password"}}
		mem := storage.NewMemory()
		s := session.New(api, mem)

		res := s.Login(context.Background(), core.LoginCredentials{Email: "a@b.com", Password: "bad"})
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid email or password", res.Message)
		assert.False(t, s.IsAuthenticated())
		_, ok := persisted(t, mem)
		assert.False(t, ok)
	})

	t.Run("Network Error", func(t *testing.T) {
		api := &MockAPI{LoginErr: errors.New("connection refused")}
		s := session.New(api, storage.NewMemory())

		res := s.Login(context.Background(), core.LoginCredentials{})
		assert.False(t, res.Success)
		assert.Equal(t, core.MsgInvalidCredentials, res.Message)
	})

	t.Run("Keeps Previous Session", func(t *testing.T) {
		mem := storage.NewMemory()
		require.NoError(t, mem.Set(context.Background(), core.TokenKey, "old"))
		api := &MockAPI{LoginErr: errors.New("boom")}
		s := session.New(api, mem)
		require.NoError(t, s.Init(context.Background()))

		s.Login(context.Background(), core.LoginCredentials{})
		assert.Equal(t, "old", s.Token())
		v, _ := persisted(t, mem)
		assert.Equal(t, "old", v)
	})

	t.Run("Empty Token", func(t *testing.T) {
		api := &MockAPI{LoginResp: core.LoginResponse{}}
		s := session.New(api, storage.NewMemory())

		res := s.Login(context.Background(), core.LoginCredentials{})
		assert.False(t, res.Success)
		assert.False(t, s.IsAuthenticated())
	})

	t.Run("Storage Write Fails", func(t *testing.T) {
		api := &MockAPI{LoginResp: core.LoginResponse{AccessToken: "tok1"}}
		s := session.New(api, FailingStorage{storage.NewMemory()})

		res := s.Login(context.Background(), core.LoginCredentials{})
		assert.False(t, res.Success)
		assert.False(t, s.IsAuthenticated(), "memory must not hold a token storage does not")
	})
}

func TestRegister(t *testing.T) {
	t.Run("Success Does Not Log In", func(t *testing.T) {
		api := &MockAPI{}
		mem := storage.NewMemory()
		s := session.New(api, mem)

		res := s.Register(context.Background(), core.RegisterCredentials{Email: "a@b.com", Name: "A", Password: "x"})
		assert.True(t, res.Success)
		assert.False(t, s.IsAuthenticated())
		_, ok := persisted(t, mem)
		assert.False(t, ok)
		assert.Len(t, api.Registers, 1)
	})

	t.Run("Failure Is Generic", func(t *testing.T) {
		api := &MockAPI{RegisterErr: serverError{"Email already registered"}}
		s := session.New(api, storage.NewMemory())

		res := s.Register(context.Background(), core.RegisterCredentials{})
		assert.False(t, res.Success)
		assert.Equal(t, core.MsgRegistrationFailed, res.Message)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := session.New(&MockAPI{LoginResp: core.LoginResponse{AccessToken: "tok1"}}, mem)

	require.True(t, s.Login(ctx, core.LoginCredentials{}).Success)

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	_, ok := persisted(t, mem)
	assert.False(t, ok)

	// Idempotent.
	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	_, ok = persisted(t, mem)
	assert.False(t, ok)
}

func TestLogout_StorageFailureStillClearsMemory(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, core.TokenKey, "tok1"))
	s := session.New(&MockAPI{}, FailingStorage{mem})
	require.NoError(t, s.Init(ctx))
	require.True(t, s.IsAuthenticated())

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
}

func TestInitAndSync(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := session.New(&MockAPI{}, mem)

	require.NoError(t, s.Init(ctx))
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, mem.Set(ctx, core.TokenKey, "from-other-process"))
	changed, err := s.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "from-other-process", s.Token())

	changed, err = s.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	s.Reset()
	assert.False(t, s.IsAuthenticated())
	v, _ := persisted(t, mem)
	assert.Equal(t, "from-other-process", v, "Reset must not touch storage")
}

func TestRequireAuth(t *testing.T) {
	s := session.New(&MockAPI{}, storage.NewMemory())
	err := s.RequireAuth()
	assert.ErrorIs(t, err, core.ErrNotAuthenticated)
	assert.True(t, session.IsNotAuthenticated(err))
}

func TestClaims(t *testing.T) {
	exp := time.Now().Add(-time.Minute).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@b.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	s := session.New(&MockAPI{LoginResp: core.LoginResponse{AccessToken: signed}}, storage.NewMemory())
	require.True(t, s.Login(context.Background(), core.LoginCredentials{}).Success)

	c, ok := s.Claims()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", c.Subject)
	require.NotNil(t, c.ExpiresAt)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.True(t, c.Expired(time.Now()))

	// An expired JWT is still an authenticated session client-side.
	assert.True(t, s.IsAuthenticated())

	st, ok := s.State().(session.SessionState)
	require.True(t, ok)
	assert.True(t, st.Authenticated)
	assert.True(t, st.Expired)
}

func TestClaims_OpaqueToken(t *testing.T) {
	s := session.New(&MockAPI{LoginResp: core.LoginResponse{AccessToken: "tok1"}}, storage.NewMemory())
	require.True(t, s.Login(context.Background(), core.LoginCredentials{}).Success)

	_, ok := s.Claims()
	assert.False(t, ok)
	assert.True(t, s.IsAuthenticated())
}
