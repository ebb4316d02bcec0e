package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// LoadAll returns the full persisted quote collection
func (s *Storage) LoadAll(ctx context.Context) ([]*models.Quote, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var quotes []*models.Quote

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuotes)
		if bucket == nil {
			return fmt.Errorf("quotes bucket not found")
		}

		// Итерируемся по всем записям
		return bucket.ForEach(func(k, v []byte) error {
			quote := &models.Quote{}
			if err := json.Unmarshal(v, quote); err != nil {
				return fmt.Errorf("failed to unmarshal quote %s: %w", k, err)
			}
			quotes = append(quotes, quote)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// ReplaceAll atomically replaces the whole quote collection.
// Выполняется в одной транзакции: либо видна вся новая коллекция,
// либо вся старая.
func (s *Storage) ReplaceAll(ctx context.Context, quotes []*models.Quote) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Пересоздаем bucket, чтобы убрать записи, которых нет в новой коллекции
		if err := tx.DeleteBucket(bucketQuotes); err != nil {
			return fmt.Errorf("failed to drop quotes bucket: %w", err)
		}
		bucket, err := tx.CreateBucket(bucketQuotes)
		if err != nil {
			return fmt.Errorf("failed to recreate quotes bucket: %w", err)
		}

		for _, quote := range quotes {
			data, err := json.Marshal(quote)
			if err != nil {
				return fmt.Errorf("failed to marshal quote %s: %w", quote.ID, err)
			}
			if err := bucket.Put([]byte(quote.ID), data); err != nil {
				return fmt.Errorf("failed to save quote %s: %w", quote.ID, err)
			}
		}

		return nil
	})
}

// Upsert replaces the quote with matching ID or appends it if absent
func (s *Storage) Upsert(ctx context.Context, quote *models.Quote) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuotes)
		if bucket == nil {
			return fmt.Errorf("quotes bucket not found")
		}

		data, err := json.Marshal(quote)
		if err != nil {
			return fmt.Errorf("failed to marshal quote: %w", err)
		}

		if err := bucket.Put([]byte(quote.ID), data); err != nil {
			return fmt.Errorf("failed to save quote: %w", err)
		}

		return nil
	})
}

// Get retrieves a quote by ID
func (s *Storage) Get(ctx context.Context, id string) (*models.Quote, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var quote *models.Quote

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuotes)
		if bucket == nil {
			return fmt.Errorf("quotes bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrQuoteNotFound
		}

		quote = &models.Quote{}
		if err := json.Unmarshal(data, quote); err != nil {
			return fmt.Errorf("failed to unmarshal quote: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return quote, nil
}
