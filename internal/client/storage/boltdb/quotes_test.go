package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

func testQuote(id, text string) *models.Quote {
	return &models.Quote{
		ID:        id,
		Text:      text,
		Author:    "Author",
		Category:  "Category",
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
		Origin:    models.OriginLocal,
	}
}

func TestLoadAll_Empty(t *testing.T) {
	store := newTestStorage(t)

	quotes, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestUpsert_And_Get(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	quote := testQuote("local-1", "first")
	require.NoError(t, store.Upsert(ctx, quote))

	got, err := store.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, quote, got)

	// Upsert с тем же ID заменяет запись
	updated := testQuote("local-1", "second")
	require.NoError(t, store.Upsert(ctx, updated))

	got, err = store.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)

	// Всего одна запись
	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrQuoteNotFound)
	assert.Nil(t, got)
}

func TestReplaceAll(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testQuote("local-1", "old")))
	require.NoError(t, store.Upsert(ctx, testQuote("local-2", "old")))

	// Полная замена коллекции: старые записи исчезают
	replacement := []*models.Quote{
		testQuote("remote-1", "new"),
		testQuote("remote-2", "new"),
		testQuote("remote-3", "new"),
	}
	require.NoError(t, store.ReplaceAll(ctx, replacement))

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = store.Get(ctx, "local-1")
	assert.ErrorIs(t, err, storage.ErrQuoteNotFound)

	got, err := store.Get(ctx, "remote-2")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Text)
}

func TestReplaceAll_WithEmpty(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testQuote("local-1", "text")))
	require.NoError(t, store.ReplaceAll(ctx, nil))

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestQuotes_StorageClosed(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.LoadAll(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Upsert(ctx, testQuote("local-1", "text"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.ReplaceAll(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.Get(ctx, "local-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
