package storage

import (
	"context"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

//go:generate go tool moq -out settingsstorage_mock.go . SettingsStorage

// SettingsStorage defines the interface for small client-side settings.
type SettingsStorage interface {
	// SaveSelectedCategory persists the category last chosen for display.
	SaveSelectedCategory(ctx context.Context, category string) error

	// GetSelectedCategory returns the persisted display category.
	// Returns an empty string if none was ever saved.
	GetSelectedCategory(ctx context.Context) (string, error)

	// SaveLastSync persists the time and status of the last sync cycle.
	SaveLastSync(ctx context.Context, at time.Time, status models.SyncStatus) error

	// GetLastSync returns the time and status of the last sync cycle.
	// Returns a zero time if no cycle has completed yet.
	GetLastSync(ctx context.Context) (time.Time, models.SyncStatus, error)
}
