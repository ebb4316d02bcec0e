package storage

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

//go:generate go tool moq -out quotestorage_mock.go . QuoteStorage

// QuoteStorage defines the interface for the durable quote collection.
// Every successful mutating call is durably persisted before it returns;
// no component mutates the persisted collection except through it.
type QuoteStorage interface {
	// LoadAll returns the full persisted collection.
	LoadAll(ctx context.Context) ([]*models.Quote, error)

	// ReplaceAll atomically replaces the whole persisted collection.
	// Either the new collection is durably visible or the old one is.
	ReplaceAll(ctx context.Context, quotes []*models.Quote) error

	// Upsert replaces the quote with matching ID or appends it if absent.
	Upsert(ctx context.Context, quote *models.Quote) error

	// Get returns the quote with the given ID.
	// Returns ErrQuoteNotFound if no such quote exists.
	Get(ctx context.Context, id string) (*models.Quote, error)
}
