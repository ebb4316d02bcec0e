package storage

import (
	"context"

	"github.com/iudanet/quotesync/pkg/api"
)

// PostStorage defines the interface for post persistence.
// The server speaks the same wire format the client consumes, so
// posts are stored as-is.
type PostStorage interface {
	// ListPosts returns up to limit posts ordered by id.
	// A non-positive limit returns all posts.
	ListPosts(ctx context.Context, limit int) ([]*api.Post, error)

	// GetPost retrieves a single post by id.
	// Returns ErrPostNotFound if the post doesn't exist.
	GetPost(ctx context.Context, id int) (*api.Post, error)

	// SavePost inserts a new post and returns it with the assigned id.
	SavePost(ctx context.Context, post *api.Post) (*api.Post, error)

	// CountPosts returns the number of stored posts.
	CountPosts(ctx context.Context) (int, error)
}
