package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

// ListPosts returns up to limit posts ordered by id.
// A non-positive limit returns all posts.
func (s *Storage) ListPosts(ctx context.Context, limit int) ([]*api.Post, error) {
	query := `
		SELECT id, user_id, title, body
		FROM posts
		ORDER BY id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*api.Post, 0)
	for rows.Next() {
		post := &api.Post{}
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Body); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// GetPost retrieves a single post by id.
// Returns ErrPostNotFound if the post doesn't exist.
func (s *Storage) GetPost(ctx context.Context, id int) (*api.Post, error) {
	query := `
		SELECT id, user_id, title, body
		FROM posts
		WHERE id = ?
	`

	post := &api.Post{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// SavePost inserts a new post and returns it with the assigned id.
func (s *Storage) SavePost(ctx context.Context, post *api.Post) (*api.Post, error) {
	query := `
		INSERT INTO posts (user_id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		post.UserID,
		post.Title,
		post.Body,
		time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	saved := *post
	saved.ID = int(id)

	return &saved, nil
}

// CountPosts returns the number of stored posts
func (s *Storage) CountPosts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
