package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

var (
	keySelectedCategory = []byte("selected_category")
	keyLastSync         = []byte("last_sync")
)

// lastSyncRecord сериализуемое состояние последнего цикла синхронизации
type lastSyncRecord struct {
	At     time.Time         `json:"at"`
	Status models.SyncStatus `json:"status"`
}

// SaveSelectedCategory persists the category last chosen for display
func (s *Storage) SaveSelectedCategory(ctx context.Context, category string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}
		return bucket.Put(keySelectedCategory, []byte(category))
	})
}

// GetSelectedCategory returns the persisted display category
func (s *Storage) GetSelectedCategory(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var category string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}
		category = string(bucket.Get(keySelectedCategory))
		return nil
	})
	if err != nil {
		return "", err
	}

	return category, nil
}

// SaveLastSync persists the time and status of the last sync cycle
func (s *Storage) SaveLastSync(ctx context.Context, at time.Time, status models.SyncStatus) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(lastSyncRecord{At: at, Status: status})
	if err != nil {
		return fmt.Errorf("failed to marshal last sync record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}
		return bucket.Put(keyLastSync, data)
	})
}

// GetLastSync returns the time and status of the last sync cycle.
// Возвращает нулевое время, если синхронизация еще не выполнялась.
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, models.SyncStatus, error) {
	if s.db == nil {
		return time.Time{}, "", storage.ErrStorageClosed
	}

	var record lastSyncRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(keyLastSync)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal last sync record: %w", err)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, "", err
	}

	return record.At, record.Status, nil
}
