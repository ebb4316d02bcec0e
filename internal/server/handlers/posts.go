package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/quotesync/pkg/api"
)

// PostStorage определяет интерфейс для работы с постами
type PostStorage interface {
	ListPosts(ctx context.Context, limit int) ([]*api.Post, error)
	SavePost(ctx context.Context, post *api.Post) (*api.Post, error)
}

// PostsHandler handles the JSONPlaceholder-shaped posts endpoint
type PostsHandler struct {
	logger  *slog.Logger
	storage PostStorage
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, storage PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandlePosts обрабатывает GET и POST запросы на /posts
func (h *PostsHandler) HandlePosts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetPosts(w, r)
	case http.MethodPost:
		h.handleCreatePost(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleGetPosts обрабатывает GET /posts?_limit=N
// Возвращает плоский массив постов, как это делает JSONPlaceholder
func (h *PostsHandler) handleGetPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим параметр _limit
	limit := 0
	if limitStr := r.URL.Query().Get("_limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("Invalid _limit parameter", "_limit", limitStr)
			h.writeError(w, http.StatusBadRequest, "invalid _limit parameter")
			return
		}
		limit = parsed
	}

	posts, err := h.storage.ListPosts(ctx, limit)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("GET posts", "limit", limit, "returned", len(posts))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(posts); err != nil {
		h.logger.Error("Failed to encode posts response", slog.Any("error", err))
	}
}

// handleCreatePost обрабатывает POST /posts
// Возвращает созданный пост с присвоенным id, статус 201
func (h *PostsHandler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var post api.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.logger.Warn("Invalid post body", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(post.Title) == "" {
		h.writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if post.UserID == 0 {
		post.UserID = 1
	}

	saved, err := h.storage.SavePost(ctx, &post)
	if err != nil {
		h.logger.Error("Failed to save post", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("POST post", "id", saved.ID, "user_id", saved.UserID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(saved); err != nil {
		h.logger.Error("Failed to encode post response", slog.Any("error", err))
	}
}

// writeError отправляет JSON ошибку клиенту
func (h *PostsHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}); err != nil {
		h.logger.Error("Failed to encode error response", slog.Any("error", err))
	}
}
