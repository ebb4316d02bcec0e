package storage

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

//go:generate go tool moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage defines the interface for the persisted conflict history.
// The history is stored and rewritten wholesale: the ledger owns ordering
// and resolution state, storage only makes the blob durable.
type ConflictStorage interface {
	// LoadLog returns the full conflict history, most recent first.
	LoadLog(ctx context.Context) ([]models.ConflictEntry, error)

	// SaveLog durably rewrites the full conflict history.
	// Passing an empty slice clears the history.
	SaveLog(ctx context.Context, entries []models.ConflictEntry) error
}
