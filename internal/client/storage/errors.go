package storage

import "errors"

// Common client storage errors
var (
	// ErrQuoteNotFound indicates that no quote with the given ID exists
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
