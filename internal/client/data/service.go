package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	httpClient "github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
)

// ErrNoQuotes indicates that no quote matched the requested selection.
var ErrNoQuotes = errors.New("no quotes available")

//go:generate go tool moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского data сервиса
type Service interface {
	// AddQuote creates a locally originated quote, persists it and
	// best-effort pushes it to the remote.
	AddQuote(ctx context.Context, text, author, category string) (*models.Quote, error)

	// ListQuotes returns the full local collection.
	ListQuotes(ctx context.Context) ([]*models.Quote, error)

	// ListByCategory returns quotes of one category, or all quotes when
	// category is empty or "all".
	ListByCategory(ctx context.Context, category string) ([]*models.Quote, error)

	// Categories returns the sorted set of distinct categories.
	Categories(ctx context.Context) ([]string, error)

	// RandomQuote picks a random quote, optionally within a category.
	RandomQuote(ctx context.Context, category string) (*models.Quote, error)

	// SeedDefaults populates an empty store with starter quotes.
	// Returns the number of quotes seeded (0 when the store is not empty).
	SeedDefaults(ctx context.Context) (int, error)

	// SelectCategory persists the display category filter.
	SelectCategory(ctx context.Context, category string) error

	// SelectedCategory returns the persisted display category filter.
	SelectedCategory(ctx context.Context) (string, error)

	// Export writes the full collection as JSON.
	Export(ctx context.Context, w io.Writer) error

	// Import merges quotes from a JSON export into the store.
	// Returns the number of imported quotes.
	Import(ctx context.Context, r io.Reader) (int, error)
}

// service handles client-side quote operations
type service struct {
	apiClient httpClient.ClientAPI
	quotes    storage.QuoteStorage
	settings  storage.SettingsStorage
	logger    *slog.Logger
}

// NewService creates a new data service
func NewService(
	apiClient httpClient.ClientAPI,
	quotes storage.QuoteStorage,
	settings storage.SettingsStorage,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient: apiClient,
		quotes:    quotes,
		settings:  settings,
		logger:    logger,
	}
}

// AddQuote adds a new locally created quote to the store.
// Push на сервер best-effort: ошибка логируется, но не блокирует и не
// откатывает локальное состояние - сервер все равно не хранит записи.
func (s *service) AddQuote(ctx context.Context, text, author, category string) (*models.Quote, error) {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)
	category = strings.TrimSpace(category)

	if err := validation.ValidateQuoteInput(text, author, category); err != nil {
		return nil, fmt.Errorf("invalid quote: %w", err)
	}

	quote := models.NewLocalQuote(text, author, category, time.Now())

	if err := s.quotes.Upsert(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	if err := s.apiClient.PushQuote(ctx, quote); err != nil {
		s.logger.Warn("Push to server failed",
			"quote_id", quote.ID,
			"error", err)
	}

	return quote, nil
}

// ListQuotes returns the full local collection
func (s *service) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	return quotes, nil
}

// ListByCategory returns quotes filtered by category
func (s *service) ListByCategory(ctx context.Context, category string) ([]*models.Quote, error) {
	quotes, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	if category == "" || category == "all" {
		return quotes, nil
	}

	filtered := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}

	return filtered, nil
}

// Categories returns the sorted set of distinct categories
func (s *service) Categories(ctx context.Context) ([]string, error) {
	quotes, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	seen := make(map[string]struct{}, len(quotes))
	categories := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		categories = append(categories, q.Category)
	}
	sort.Strings(categories)

	return categories, nil
}

// RandomQuote picks a random quote, optionally within a category
func (s *service) RandomQuote(ctx context.Context, category string) (*models.Quote, error) {
	quotes, err := s.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, ErrNoQuotes
	}

	return quotes[rand.IntN(len(quotes))], nil
}

// defaultQuotes стартовый набор для пустого хранилища
func defaultQuotes(now time.Time) []*models.Quote {
	seeds := []struct {
		text, author, category string
	}{
		{"The best way to get started is to quit talking and begin doing.", "Walt Disney", "Motivation"},
		{"Life is what happens when you're busy making other plans.", "John Lennon", "Life"},
		{"Your time is limited, so don't waste it living someone else's life.", "Steve Jobs", "Inspiration"},
	}

	quotes := make([]*models.Quote, 0, len(seeds))
	for i, seed := range seeds {
		// Сдвигаем время, чтобы id были уникальны
		quotes = append(quotes,
			models.NewLocalQuote(seed.text, seed.author, seed.category, now.Add(time.Duration(i))))
	}
	return quotes
}

// SeedDefaults populates an empty store with starter quotes
func (s *service) SeedDefaults(ctx context.Context) (int, error) {
	existing, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load quotes: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeds := defaultQuotes(time.Now())
	if err := s.quotes.ReplaceAll(ctx, seeds); err != nil {
		return 0, fmt.Errorf("failed to seed quotes: %w", err)
	}

	s.logger.Info("Seeded default quotes", "count", len(seeds))
	return len(seeds), nil
}

// SelectCategory persists the display category filter
func (s *service) SelectCategory(ctx context.Context, category string) error {
	if err := s.settings.SaveSelectedCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to save selected category: %w", err)
	}
	return nil
}

// SelectedCategory returns the persisted display category filter
func (s *service) SelectedCategory(ctx context.Context) (string, error) {
	category, err := s.settings.GetSelectedCategory(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load selected category: %w", err)
	}
	return category, nil
}

// Export writes the full collection as indented JSON
func (s *service) Export(ctx context.Context, w io.Writer) error {
	quotes, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	if quotes == nil {
		quotes = []*models.Quote{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(quotes); err != nil {
		return fmt.Errorf("failed to encode quotes: %w", err)
	}

	return nil
}

// Import merges quotes from a JSON export into the store.
// Записи без id получают новый локальный id; записи с существующим id
// замещают сохраненные.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	var quotes []*models.Quote
	if err := json.NewDecoder(r).Decode(&quotes); err != nil {
		return 0, fmt.Errorf("failed to decode quotes: %w", err)
	}

	imported := 0
	now := time.Now()
	for i, quote := range quotes {
		if quote == nil {
			continue
		}
		if err := validation.ValidateQuoteInput(quote.Text, quote.Author, quote.Category); err != nil {
			s.logger.Warn("Skipping invalid imported quote", "error", err)
			continue
		}

		if quote.ID == "" {
			quote = models.NewLocalQuote(quote.Text, quote.Author, quote.Category,
				now.Add(time.Duration(i)))
		} else {
			quote = quote.Clone()
			quote.UpdatedAt = now
			if quote.Origin == "" {
				quote.Origin = models.OriginLocal
			}
		}

		if err := s.quotes.Upsert(ctx, quote); err != nil {
			return imported, fmt.Errorf("failed to save imported quote: %w", err)
		}
		imported++
	}

	return imported, nil
}
