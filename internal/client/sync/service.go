package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/conflicts"
	"github.com/iudanet/quotesync/internal/client/merge"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// DefaultFetchLimit is the number of posts requested per cycle.
const DefaultFetchLimit = 10

// Service runs reconciliation cycles between the local quote store and the
// remote source. One cycle: fetch -> reconcile -> replace collection ->
// record conflicts -> notify listeners.
type Service struct {
	apiClient  api.ClientAPI
	quotes     storage.QuoteStorage
	settings   storage.SettingsStorage
	ledger     *conflicts.Ledger
	notifier   *Notifier
	logger     *slog.Logger
	fetchLimit int
}

// NewService creates a new sync service.
// Ledger-change события прокидываются в notifier автоматически.
func NewService(
	apiClient api.ClientAPI,
	quotes storage.QuoteStorage,
	settings storage.SettingsStorage,
	ledger *conflicts.Ledger,
	fetchLimit int,
	logger *slog.Logger,
) *Service {
	if fetchLimit <= 0 {
		fetchLimit = DefaultFetchLimit
	}

	s := &Service{
		apiClient:  apiClient,
		quotes:     quotes,
		settings:   settings,
		ledger:     ledger,
		notifier:   NewNotifier(),
		logger:     logger,
		fetchLimit: fetchLimit,
	}
	ledger.SetOnChange(s.notifier.NotifyLedger)

	return s
}

// Notifier returns the event fan-out for summary and ledger-change events.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// SyncOnce performs one full reconciliation cycle.
//
// При ошибке адаптера цикл завершается со статусом transient-failure:
// ни хранилище, ни ledger не меняются, ошибка не фатальна - следующий
// tick повторит попытку. Ошибки персистентности фатальны для цикла
// и пробрасываются вызывающему.
func (s *Service) SyncOnce(ctx context.Context) (*models.SyncSummary, error) {
	s.logger.Info("Starting sync cycle", "limit", s.fetchLimit)

	remote, err := s.apiClient.FetchQuotes(ctx, s.fetchLimit)
	if err != nil {
		summary := &models.SyncSummary{Status: models.SyncStatusFailed}

		// Фиксируем неуспех для status, но не прерываемся из-за этого
		if saveErr := s.settings.SaveLastSync(ctx, time.Now(), models.SyncStatusFailed); saveErr != nil {
			s.logger.Warn("Failed to save last sync status", "error", saveErr)
		}

		s.notifier.NotifySummary(*summary)
		return summary, fmt.Errorf("fetch failed: %w", err)
	}

	local, err := s.quotes.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local quotes: %w", err)
	}

	result := merge.Reconcile(local, remote, time.Now())

	// Коллекция применяется одним ReplaceAll: снаружи batch атомарен,
	// частично слитое состояние никогда не видно
	if err := s.quotes.ReplaceAll(ctx, result.Quotes); err != nil {
		return nil, fmt.Errorf("failed to persist merged quotes: %w", err)
	}

	if err := s.ledger.Append(ctx, result.Conflicts...); err != nil {
		return nil, fmt.Errorf("failed to record conflicts: %w", err)
	}

	if err := s.settings.SaveLastSync(ctx, time.Now(), models.SyncStatusOK); err != nil {
		s.logger.Warn("Failed to save last sync status", "error", err)
	}

	s.logger.Info("Sync cycle completed",
		"fetched", len(remote),
		"added", result.Summary.Added,
		"updated", result.Summary.Updated,
		"conflicts", result.Summary.Conflicts)

	s.notifier.NotifySummary(result.Summary)
	return &result.Summary, nil
}
