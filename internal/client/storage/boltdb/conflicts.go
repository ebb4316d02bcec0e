package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// Ключ, под которым хранится вся история конфликтов одним JSON блобом.
// Порядком и статусами владеет ledger, storage только сохраняет.
var keyConflictLog = []byte("log")

// LoadLog returns the full conflict history, most recent first
func (s *Storage) LoadLog(ctx context.Context) ([]models.ConflictEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []models.ConflictEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		data := bucket.Get(keyConflictLog)
		if data == nil {
			// История еще не сохранялась
			return nil
		}

		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to unmarshal conflict log: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// SaveLog durably rewrites the full conflict history
func (s *Storage) SaveLog(ctx context.Context, entries []models.ConflictEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if entries == nil {
		entries = []models.ConflictEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict log: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		if err := bucket.Put(keyConflictLog, data); err != nil {
			return fmt.Errorf("failed to save conflict log: %w", err)
		}

		return nil
	})
}
