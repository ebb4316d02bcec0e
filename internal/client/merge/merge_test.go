package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/models"
)

func localQuote(id, text string) *models.Quote {
	return &models.Quote{
		ID:        id,
		Text:      text,
		Author:    "Author",
		Category:  "Category",
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Origin:    models.OriginLocal,
	}
}

func remoteQuote(id, text string) *models.Quote {
	return &models.Quote{
		ID:        id,
		Text:      text,
		Author:    "Author",
		Category:  "Category",
		UpdatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		Origin:    models.OriginRemote,
	}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	local := []*models.Quote{localQuote("local-1", "A")}

	result := Reconcile(local, nil, time.Now())

	// Пустой batch - это no-op цикл
	assert.Equal(t, models.SyncSummary{Status: models.SyncStatusOK}, result.Summary)
	assert.Empty(t, result.Conflicts)
	require.Len(t, result.Quotes, 1)
	assert.Equal(t, "A", result.Quotes[0].Text)
}

func TestReconcile_AddsMissingRecords(t *testing.T) {
	remote := []*models.Quote{
		remoteQuote("remote-9", "X"),
	}

	result := Reconcile(nil, remote, time.Now())

	assert.Equal(t, 1, result.Summary.Added)
	assert.Equal(t, 0, result.Summary.Updated)
	assert.Equal(t, 0, result.Summary.Conflicts)
	assert.Equal(t, models.SyncStatusOK, result.Summary.Status)
	assert.Empty(t, result.Conflicts)

	require.Len(t, result.Quotes, 1)
	assert.Equal(t, "remote-9", result.Quotes[0].ID)
	assert.Equal(t, models.OriginRemote, result.Quotes[0].Origin)
}

func TestReconcile_ConflictCapture(t *testing.T) {
	now := time.Now()
	local := []*models.Quote{localQuote("remote-1", "A")}
	remote := []*models.Quote{remoteQuote("remote-1", "B")}

	result := Reconcile(local, remote, now)

	// Ровно один конфликт с замороженными снапшотами обеих сторон
	require.Len(t, result.Conflicts, 1)
	conflict := result.Conflicts[0]
	assert.Equal(t, "remote-1", conflict.QuoteID)
	assert.Equal(t, "A", conflict.Local.Text)
	assert.Equal(t, "B", conflict.Remote.Text)
	assert.Equal(t, now, conflict.DetectedAt)
	assert.False(t, conflict.Resolved)

	// Remote-wins: в коллекции остается серверная версия
	require.Len(t, result.Quotes, 1)
	assert.Equal(t, "B", result.Quotes[0].Text)
	assert.Equal(t, models.OriginRemote, result.Quotes[0].Origin)

	assert.Equal(t, 1, result.Summary.Updated)
	assert.Equal(t, 1, result.Summary.Conflicts)
	assert.Equal(t, 0, result.Summary.Added)
}

func TestReconcile_NoFalseConflict(t *testing.T) {
	// Контент идентичен, отличаются только UpdatedAt и Origin
	local := []*models.Quote{localQuote("remote-1", "same")}
	remote := []*models.Quote{remoteQuote("remote-1", "same")}

	result := Reconcile(local, remote, time.Now())

	assert.Empty(t, result.Conflicts)
	assert.Equal(t, models.SyncSummary{Status: models.SyncStatusOK}, result.Summary)

	// Конвергенция: контент прежний, но timestamp и origin обновлены
	require.Len(t, result.Quotes, 1)
	got := result.Quotes[0]
	assert.Equal(t, "same", got.Text)
	assert.Equal(t, models.OriginRemote, got.Origin)
	assert.Equal(t, remote[0].UpdatedAt, got.UpdatedAt)
}

func TestReconcile_Idempotence(t *testing.T) {
	local := []*models.Quote{
		localQuote("remote-1", "A"),
		localQuote("local-5", "keep me"),
	}
	remote := []*models.Quote{
		remoteQuote("remote-1", "B"),
		remoteQuote("remote-2", "C"),
	}

	first := Reconcile(local, remote, time.Now())
	assert.Equal(t, 1, first.Summary.Added)
	assert.Equal(t, 1, first.Summary.Conflicts)

	// Повторный прогон того же batch против результата первого:
	// ничего не добавлено, не обновлено, без конфликтов
	second := Reconcile(first.Quotes, remote, time.Now())
	assert.Equal(t, 0, second.Summary.Added)
	assert.Equal(t, 0, second.Summary.Updated)
	assert.Equal(t, 0, second.Summary.Conflicts)
	assert.Empty(t, second.Conflicts)
	assert.Len(t, second.Quotes, 3)
}

func TestReconcile_OrderIndependentClassification(t *testing.T) {
	local := []*models.Quote{
		localQuote("remote-1", "A"),
		localQuote("remote-2", "same"),
	}
	remote := []*models.Quote{
		remoteQuote("remote-1", "B"),    // конфликт
		remoteQuote("remote-2", "same"), // конвергенция
		remoteQuote("remote-3", "new"),  // добавление
	}
	reversed := []*models.Quote{remote[2], remote[1], remote[0]}

	forward := Reconcile(local, remote, time.Now())
	backward := Reconcile(local, reversed, time.Now())

	// Классификация каждой записи не зависит от порядка обхода batch
	assert.Equal(t, forward.Summary, backward.Summary)
	require.Len(t, forward.Conflicts, 1)
	require.Len(t, backward.Conflicts, 1)
	assert.Equal(t, forward.Conflicts[0].QuoteID, backward.Conflicts[0].QuoteID)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	local := []*models.Quote{localQuote("remote-1", "A")}
	remote := []*models.Quote{remoteQuote("remote-1", "B")}

	_ = Reconcile(local, remote, time.Now())

	// Входные слайсы не изменены
	assert.Equal(t, "A", local[0].Text)
	assert.Equal(t, models.OriginLocal, local[0].Origin)
	assert.Equal(t, "B", remote[0].Text)
}

func TestReconcile_PreservesLocalOnlyRecords(t *testing.T) {
	local := []*models.Quote{localQuote("local-7", "mine")}
	remote := []*models.Quote{remoteQuote("remote-1", "theirs")}

	result := Reconcile(local, remote, time.Now())

	require.Len(t, result.Quotes, 2)
	assert.Equal(t, "local-7", result.Quotes[0].ID)
	assert.Equal(t, "mine", result.Quotes[0].Text)
	assert.Equal(t, 1, result.Summary.Added)
}
