package conflicts

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/boltdb"
	"github.com/iudanet/quotesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLedger(t *testing.T) (*Ledger, *boltdb.Storage) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ledger-test.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return NewLedger(store, store, testLogger()), store
}

func conflictFor(quoteID, localText, remoteText string) models.ConflictEntry {
	local := &models.Quote{
		ID: quoteID, Text: localText, Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginLocal,
	}
	remote := &models.Quote{
		ID: quoteID, Text: remoteText, Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginRemote,
	}
	return models.NewConflictEntry(local, remote, time.Now())
}

func TestAppend_PrependsNewestFirst(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))
	require.NoError(t, ledger.Append(ctx, conflictFor("remote-2", "c", "d")))

	history, err := ledger.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Самый свежий конфликт первый
	assert.Equal(t, "remote-2", history[0].QuoteID)
	assert.Equal(t, "remote-1", history[1].QuoteID)

	count, err := ledger.UnresolvedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAppend_Empty_NoOp(t *testing.T) {
	ledger, _ := newTestLedger(t)

	changed := false
	ledger.SetOnChange(func(int) { changed = true })

	require.NoError(t, ledger.Append(context.Background()))
	assert.False(t, changed)
}

func TestResolve_KeepLocal(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	// В хранилище лежит серверная версия (remote-wins после merge)
	remoteVersion := &models.Quote{
		ID: "remote-1", Text: "remote text", Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginRemote,
	}
	require.NoError(t, store.Upsert(ctx, remoteVersion))
	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "local text", "remote text")))

	require.NoError(t, ledger.Resolve(ctx, 0, KeepLocal))

	// Хранилище содержит локальный снапшот со свежим timestamp
	got, err := store.Get(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "local text", got.Text)
	assert.Equal(t, models.OriginLocal, got.Origin)

	history, err := ledger.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Resolved)
	assert.Equal(t, models.ResolutionKeptLocal, history[0].Resolution)

	count, err := ledger.UnresolvedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestResolve_KeepRemote(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &models.Quote{
		ID: "remote-1", Text: "remote text", Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginRemote,
	}))
	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "local text", "remote text")))

	require.NoError(t, ledger.Resolve(ctx, 0, KeepRemote))

	got, err := store.Get(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "remote text", got.Text)
	assert.Equal(t, models.OriginRemote, got.Origin)

	history, err := ledger.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionKeptRemote, history[0].Resolution)
}

func TestResolve_Finality(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &models.Quote{
		ID: "remote-1", Text: "remote text", Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginRemote,
	}))
	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "local text", "remote text")))

	require.NoError(t, ledger.Resolve(ctx, 0, KeepLocal))

	// Повторное разрешение того же конфликта отклоняется
	err := ledger.Resolve(ctx, 0, KeepRemote)
	assert.ErrorIs(t, err, ErrInvalidReference)

	// Эффект первого разрешения сохранился
	got, err := store.Get(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "local text", got.Text)
}

func TestResolve_IndexOutOfRange(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	assert.ErrorIs(t, ledger.Resolve(ctx, 0, KeepLocal), ErrInvalidReference)
	assert.ErrorIs(t, ledger.Resolve(ctx, -1, KeepLocal), ErrInvalidReference)

	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))
	assert.ErrorIs(t, ledger.Resolve(ctx, 1, KeepLocal), ErrInvalidReference)
}

func TestResolve_UnknownChoice(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))

	err := ledger.Resolve(ctx, 0, Choice("bogus"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidReference)

	// Конфликт остался неразрешенным
	count, err := ledger.UnresolvedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestResolve_StaleConflict(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	// Конфликт есть, но запись из хранилища уже удалена
	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))

	require.NoError(t, ledger.Resolve(ctx, 0, KeepLocal))

	// Entry помечен разрешенным, хранилище не тронуто
	history, err := ledger.History(ctx)
	require.NoError(t, err)
	assert.True(t, history[0].Resolved)

	_, err = store.Get(ctx, "remote-1")
	assert.ErrorIs(t, err, storage.ErrQuoteNotFound)
}

func TestClear(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))
	require.NoError(t, ledger.Clear(ctx))

	history, err := ledger.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestOnChange_Notifications(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	var counts []int
	ledger.SetOnChange(func(unresolved int) {
		counts = append(counts, unresolved)
	})

	require.NoError(t, store.Upsert(ctx, &models.Quote{
		ID: "remote-1", Text: "b", Author: "A", Category: "C",
		UpdatedAt: time.Now(), Origin: models.OriginRemote,
	}))

	require.NoError(t, ledger.Append(ctx, conflictFor("remote-1", "a", "b")))
	require.NoError(t, ledger.Resolve(ctx, 0, KeepRemote))
	require.NoError(t, ledger.Clear(ctx))

	assert.Equal(t, []int{1, 0, 0}, counts)
}
