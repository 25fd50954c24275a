package notes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notely/internal/fakeapi"
	"github.com/aretw0/notely/pkg/adapters/httpapi"
	"github.com/aretw0/notely/pkg/adapters/storage"
	"github.com/aretw0/notely/pkg/core"
	"github.com/aretw0/notely/pkg/notes"
)

func TestAgainstFakeAPI(t *testing.T) {
	ctx := context.Background()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	mem := storage.NewMemory()
	client, err := httpapi.New(srv.URL, httpapi.WithHook(httpapi.BearerFromStorage(mem)))
	require.NoError(t, err)
	token, err := fake.IssueToken("a@b.com", time.Hour)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, core.TokenKey, token))

	seed := fake.SeedNote("first", "body")
	s := notes.New(client)

	s.Fetch(ctx)
	require.Empty(t, s.Error())
	require.Len(t, s.Notes(), 1)
	assert.Equal(t, seed.ID, s.Notes()[0].ID)

	require.True(t, s.Create(ctx, core.NoteDraft{Title: "second", Content: "x"}).Success)
	require.Len(t, s.Notes(), 2)
	created := s.Notes()[1]

	res := s.Update(ctx, created.ID, core.NotePatch{ID: core.String(created.ID), Content: core.String("y")})
	require.True(t, res.Success)
	assert.Equal(t, "y", s.Notes()[1].Content)

	require.True(t, s.Delete(ctx, seed.ID).Success)
	require.Len(t, s.Notes(), 1)
	assert.Equal(t, created.ID, s.Notes()[0].ID)
	assert.Len(t, fake.Notes(), 1)

	t.Run("Server Rejects Create", func(t *testing.T) {
		fake.Stub(http.MethodPost, "/notes", fakeapi.StubResponse{Status: http.StatusInternalServerError, Body: `{}`, Times: 1})
		res := s.Create(ctx, core.NoteDraft{Title: "t"})
		assert.Equal(t, core.Fail(core.MsgCreateFailed), res)
		assert.Len(t, s.Notes(), 1)
	})

	t.Run("Server Answers Garbage", func(t *testing.T) {
		fake.Stub(http.MethodPost, "/notes", fakeapi.StubResponse{Status: http.StatusCreated, Body: `{"title":"t","content":"c"}`, Times: 1})
		res := s.Create(ctx, core.NoteDraft{Title: "t", Content: "c"})
		assert.Equal(t, core.Fail(core.MsgBadServerAnswer), res)
		assert.Len(t, s.Notes(), 1)
	})

	t.Run("Fetch Trusts Odd Timestamps", func(t *testing.T) {
		fake.Stub(http.MethodGet, "/notes", fakeapi.StubResponse{
			Status: http.StatusOK,
			Body:   `[{"id":"a","title":"x","content":"","createdAt":1700000000},{"id":"b","title":"y","content":"","updatedAt":"2024-01-02 03:04:05"},{"id":"c","title":"z","content":"","createdAt":"soon"}]`,
			Times:  1,
		})
		s.Fetch(ctx)
		require.Empty(t, s.Error())
		got := s.Notes()
		require.Len(t, got, 3)
		require.NotNil(t, got[0].CreatedAt)
		assert.Equal(t, int64(1700000000), got[0].CreatedAt.Unix())
		assert.NotNil(t, got[1].UpdatedAt)
		assert.Nil(t, got[2].CreatedAt)
	})

	t.Run("Unauthorized Fetch", func(t *testing.T) {
		before := s.Notes()
		require.NoError(t, mem.Remove(ctx, core.TokenKey))
		s.Fetch(ctx)
		assert.Equal(t, core.MsgFetchFailed, s.Error())
		assert.Equal(t, before, s.Notes())
	})
}
