package storage

import "errors"

// Common storage errors
var (
	// ErrPostNotFound indicates that the post was not found in storage
	ErrPostNotFound = errors.New("post not found")
)
