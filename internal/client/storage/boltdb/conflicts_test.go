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

func testConflict(quoteID string) models.ConflictEntry {
	local := testQuote(quoteID, "local version")
	remote := testQuote(quoteID, "remote version")
	remote.Origin = models.OriginRemote
	return models.NewConflictEntry(local, remote, time.Now().UTC().Truncate(time.Second))
}

func TestLoadLog_Empty(t *testing.T) {
	store := newTestStorage(t)

	entries, err := store.LoadLog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveLog_And_LoadLog(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entries := []models.ConflictEntry{
		testConflict("remote-2"),
		testConflict("remote-1"),
	}
	require.NoError(t, store.SaveLog(ctx, entries))

	got, err := store.LoadLog(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Порядок сохраняется как есть
	assert.Equal(t, "remote-2", got[0].QuoteID)
	assert.Equal(t, "remote-1", got[1].QuoteID)
	assert.Equal(t, entries, got)
}

func TestSaveLog_Overwrite(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLog(ctx, []models.ConflictEntry{testConflict("remote-1")}))

	// Запись целиком перезаписывает историю
	require.NoError(t, store.SaveLog(ctx, []models.ConflictEntry{
		testConflict("remote-2"),
		testConflict("remote-3"),
	}))

	got, err := store.LoadLog(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "remote-2", got[0].QuoteID)
}

func TestSaveLog_Clear(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLog(ctx, []models.ConflictEntry{testConflict("remote-1")}))
	require.NoError(t, store.SaveLog(ctx, nil))

	got, err := store.LoadLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConflicts_StorageClosed(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.LoadLog(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveLog(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
