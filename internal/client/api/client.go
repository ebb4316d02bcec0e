package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/pkg/api"
)

//go:generate go tool moq -out client_mock.go . ClientAPI

// Placeholder values for remote-derived quotes. The remote protocol has no
// author or category fields, and a post may carry neither title nor body.
const (
	placeholderText     = "Untitled"
	placeholderAuthor   = "API"
	placeholderCategory = "API"
)

// ClientAPI определяет интерфейс адаптера удаленного источника
type ClientAPI interface {
	// FetchQuotes загружает до limit постов с сервера и нормализует их
	// в канонические записи
	FetchQuotes(ctx context.Context, limit int) ([]*models.Quote, error)

	// PushQuote отправляет локально созданную запись на сервер.
	// Сервер не сохраняет запись долговременно, ошибка отправки никогда
	// не откатывает локальное состояние.
	PushQuote(ctx context.Context, quote *models.Quote) error
}

// Client представляет HTTP клиент для взаимодействия с удаленным API постов
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент.
// baseURL - полный URL коллекции постов, например http://localhost:8080/posts
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// FetchQuotes выполняет GET <baseURL>?_limit=<N> и нормализует ответ.
// Один некорректный пост не валит весь batch - он отбрасывается,
// остальные обрабатываются.
func (c *Client) FetchQuotes(ctx context.Context, limit int) ([]*models.Quote, error) {
	url := fmt.Sprintf("%s?_limit=%d", c.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("server responded %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем массив поэлементно, чтобы битый элемент не валил весь ответ
	var rawPosts []json.RawMessage
	if err := json.Unmarshal(respBody, &rawPosts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	now := time.Now()
	quotes := make([]*models.Quote, 0, len(rawPosts))
	for _, raw := range rawPosts {
		var post api.Post
		if err := json.Unmarshal(raw, &post); err != nil {
			c.logger.Warn("Dropping malformed post", "error", err)
			continue
		}
		// Без серверного id нельзя построить детерминированный локальный id
		if post.ID <= 0 {
			c.logger.Warn("Dropping post without id")
			continue
		}
		quotes = append(quotes, quoteFromPost(&post, now))
	}

	return quotes, nil
}

// PushQuote выполняет POST <baseURL> с телом {title, body, userId}.
// Тело ответа игнорируется - сервер не сохраняет запись.
func (c *Client) PushQuote(ctx context.Context, quote *models.Quote) error {
	body, err := json.Marshal(api.Post{
		Title:  quote.Text,
		Body:   quote.Author,
		UserID: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Вычитываем тело, чтобы соединение можно было переиспользовать
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to drain response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push failed with status %d", resp.StatusCode)
	}

	return nil
}

// quoteFromPost нормализует серверный пост в каноническую запись.
// Id детерминированный: один и тот же пост при повторных fetch всегда
// попадает в одну и ту же локальную запись.
func quoteFromPost(post *api.Post, now time.Time) *models.Quote {
	text := post.Title
	if text == "" {
		text = post.Body
	}
	if text == "" {
		text = placeholderText
	}

	return &models.Quote{
		ID:        models.RemoteQuoteID(post.ID),
		Text:      text,
		Author:    placeholderAuthor,
		Category:  placeholderCategory,
		UpdatedAt: now,
		Origin:    models.OriginRemote,
	}
}
