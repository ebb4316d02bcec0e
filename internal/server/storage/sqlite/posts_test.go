package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := newTestStorage(t)

	// Таблица создана миграцией
	var name string
	err := s.DB().QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='posts'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "posts", name)
}

func TestSavePost_AssignsSequentialIDs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	input := &api.Post{UserID: 1, Title: "first", Body: "a"}
	first, err := s.SavePost(ctx, input)
	require.NoError(t, err)
	second, err := s.SavePost(ctx, &api.Post{UserID: 1, Title: "second", Body: "b"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Исходный пост не мутируется
	assert.Zero(t, input.ID)
}

func TestGetPost(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	saved, err := s.SavePost(ctx, &api.Post{UserID: 1, Title: "title", Body: "body"})
	require.NoError(t, err)

	got, err := s.GetPost(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = s.GetPost(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestListPosts_Limit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := s.SavePost(ctx, &api.Post{UserID: 1, Title: title})
		require.NoError(t, err)
	}

	limited, err := s.ListPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "one", limited[0].Title)
	assert.Equal(t, "two", limited[1].Title)

	// Неположительный limit возвращает все
	all, err := s.ListPosts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListPosts_Empty(t *testing.T) {
	s := newTestStorage(t)

	posts, err := s.ListPosts(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestCountPosts(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	count, err := s.CountPosts(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.SavePost(ctx, &api.Post{UserID: 1, Title: "one"})
	require.NoError(t, err)

	count, err = s.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
