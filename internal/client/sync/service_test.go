package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/conflicts"
	"github.com/iudanet/quotesync/internal/client/storage/boltdb"
	"github.com/iudanet/quotesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService собирает сервис на реальном boltdb хранилище
// и моке API клиента
func newTestService(t *testing.T, apiMock *api.ClientAPIMock) (*Service, *boltdb.Storage) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sync-test.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	ledger := conflicts.NewLedger(store, store, testLogger())
	service := NewService(apiMock, store, store, ledger, DefaultFetchLimit, testLogger())

	return service, store
}

func remoteFixture(id int, text string) *models.Quote {
	return &models.Quote{
		ID:        models.RemoteQuoteID(id),
		Text:      text,
		Author:    "API",
		Category:  "API",
		UpdatedAt: time.Now(),
		Origin:    models.OriginRemote,
	}
}

func TestSyncOnce_EndToEnd(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		FetchQuotesFunc: func(ctx context.Context, limit int) ([]*models.Quote, error) {
			return []*models.Quote{remoteFixture(9, "X")}, nil
		},
	}
	service, store := newTestService(t, apiMock)
	ctx := context.Background()

	summary, err := service.SyncOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, &models.SyncSummary{
		Status: models.SyncStatusOK,
		Added:  1,
	}, summary)

	// В хранилище ровно одна запись с детерминированным id
	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "remote-9", all[0].ID)
	assert.Equal(t, "X", all[0].Text)
	assert.Equal(t, models.OriginRemote, all[0].Origin)

	// Статус последней синхронизации сохранен
	at, status, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.False(t, at.IsZero())
	assert.Equal(t, models.SyncStatusOK, status)
}

func TestSyncOnce_ConflictFlow(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		FetchQuotesFunc: func(ctx context.Context, limit int) ([]*models.Quote, error) {
			return []*models.Quote{remoteFixture(1, "B")}, nil
		},
	}
	service, store := newTestService(t, apiMock)
	ctx := context.Background()

	// Локальная версия с тем же id, но другим текстом
	require.NoError(t, store.Upsert(ctx, &models.Quote{
		ID: "remote-1", Text: "A", Author: "API", Category: "API",
		UpdatedAt: time.Now(), Origin: models.OriginLocal,
	}))

	var summaries []models.SyncSummary
	var ledgerCounts []int
	service.Notifier().SubscribeSummary(func(s models.SyncSummary) {
		summaries = append(summaries, s)
	})
	service.Notifier().SubscribeLedger(func(n int) {
		ledgerCounts = append(ledgerCounts, n)
	})

	summary, err := service.SyncOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Conflicts)
	assert.Equal(t, 0, summary.Added)

	// Remote-wins в хранилище
	got, err := store.Get(ctx, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Text)

	// Конфликт зафиксирован с обоими снапшотами
	log, err := store.LoadLog(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "A", log[0].Local.Text)
	assert.Equal(t, "B", log[0].Remote.Text)
	assert.False(t, log[0].Resolved)

	// Подписчики получили события
	require.Len(t, summaries, 1)
	assert.Equal(t, *summary, summaries[0])
	assert.Equal(t, []int{1}, ledgerCounts)
}

func TestSyncOnce_FetchFailure(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		FetchQuotesFunc: func(ctx context.Context, limit int) ([]*models.Quote, error) {
			return nil, errors.New("connection refused")
		},
	}
	service, store := newTestService(t, apiMock)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &models.Quote{
		ID: "local-1", Text: "keep", Author: "a", Category: "c",
		UpdatedAt: time.Now(), Origin: models.OriginLocal,
	}))

	var summaries []models.SyncSummary
	service.Notifier().SubscribeSummary(func(s models.SyncSummary) {
		summaries = append(summaries, s)
	})

	summary, err := service.SyncOnce(ctx)
	require.Error(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, models.SyncStatusFailed, summary.Status)
	assert.Zero(t, summary.Added)

	// Ни хранилище, ни ledger не изменились
	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Text)

	log, err := store.LoadLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)

	// Подписчик получил transient-failure summary
	require.Len(t, summaries, 1)
	assert.Equal(t, models.SyncStatusFailed, summaries[0].Status)

	_, status, err := store.GetLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusFailed, status)
}

func TestSyncOnce_SecondRunIsNoOp(t *testing.T) {
	batch := []*models.Quote{
		remoteFixture(1, "one"),
		remoteFixture(2, "two"),
	}
	apiMock := &api.ClientAPIMock{
		FetchQuotesFunc: func(ctx context.Context, limit int) ([]*models.Quote, error) {
			return batch, nil
		},
	}
	service, _ := newTestService(t, apiMock)
	ctx := context.Background()

	first, err := service.SyncOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	// Тот же batch против результата первого прогона: ничего не меняется
	second, err := service.SyncOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.SyncSummary{Status: models.SyncStatusOK}, second)
}

func TestSyncOnce_EmptyBatch(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		FetchQuotesFunc: func(ctx context.Context, limit int) ([]*models.Quote, error) {
			return nil, nil
		},
	}
	service, _ := newTestService(t, apiMock)

	summary, err := service.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.SyncSummary{Status: models.SyncStatusOK}, summary)
}
