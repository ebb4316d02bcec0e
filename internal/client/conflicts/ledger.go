// Package conflicts owns the ordered history of detected divergences and
// their one-shot manual resolution.
package conflicts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// ErrInvalidReference indicates a resolve call against a nonexistent or
// already resolved conflict entry. No state is mutated in that case.
var ErrInvalidReference = errors.New("invalid conflict reference")

// Choice selects which frozen snapshot wins a manual resolution.
type Choice string

const (
	KeepLocal  Choice = "local"  // оставить локальную версию
	KeepRemote Choice = "remote" // оставить серверную версию
)

// Ledger manages the persisted conflict history (most recent first).
// Applying a resolution is the only place besides the merge cycle that
// writes into the quote store, and it goes through the store contract.
type Ledger struct {
	quotes   storage.QuoteStorage
	log      storage.ConflictStorage
	logger   *slog.Logger
	onChange func(unresolved int)
}

// NewLedger creates a new conflict ledger.
func NewLedger(quotes storage.QuoteStorage, log storage.ConflictStorage, logger *slog.Logger) *Ledger {
	return &Ledger{
		quotes: quotes,
		log:    log,
		logger: logger,
	}
}

// SetOnChange registers a callback invoked with the new unresolved count
// after every successful ledger mutation. Used by the sync service to fan
// out ledger-change events without the ledger knowing about listeners.
func (l *Ledger) SetOnChange(fn func(unresolved int)) {
	l.onChange = fn
}

// Append prepends newly detected conflicts to the history and persists it.
// Самые свежие конфликты оказываются в начале списка.
func (l *Ledger) Append(ctx context.Context, entries ...models.ConflictEntry) error {
	if len(entries) == 0 {
		return nil
	}

	existing, err := l.log.LoadLog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load conflict log: %w", err)
	}

	updated := make([]models.ConflictEntry, 0, len(entries)+len(existing))
	updated = append(updated, entries...)
	updated = append(updated, existing...)

	if err := l.log.SaveLog(ctx, updated); err != nil {
		return fmt.Errorf("failed to save conflict log: %w", err)
	}

	l.logger.Info("Recorded conflicts", "new", len(entries), "total", len(updated))
	l.notifyChange(updated)
	return nil
}

// History returns the full conflict history, most recent first.
func (l *Ledger) History(ctx context.Context) ([]models.ConflictEntry, error) {
	entries, err := l.log.LoadLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict log: %w", err)
	}
	return entries, nil
}

// UnresolvedCount returns the number of entries still awaiting resolution.
func (l *Ledger) UnresolvedCount(ctx context.Context) (int, error) {
	entries, err := l.log.LoadLog(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load conflict log: %w", err)
	}
	return countUnresolved(entries), nil
}

// Resolve settles the conflict at index with the chosen snapshot.
//
// Возвращает ErrInvalidReference если index вне диапазона или конфликт уже
// разрешен - повторное разрешение запрещено. Если запись была независимо
// удалена из хранилища после обнаружения конфликта, entry все равно
// помечается разрешенным, но хранилище не меняется.
//
// May race a concurrently running sync cycle; the last write wins. See the
// concurrency notes in DESIGN.md.
func (l *Ledger) Resolve(ctx context.Context, index int, choice Choice) error {
	entries, err := l.log.LoadLog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load conflict log: %w", err)
	}

	if index < 0 || index >= len(entries) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidReference, index)
	}
	entry := entries[index]
	if entry.Resolved {
		return fmt.Errorf("%w: conflict %d already resolved", ErrInvalidReference, index)
	}

	var chosen *models.Quote
	var resolution models.Resolution
	switch choice {
	case KeepLocal:
		chosen = entry.Local.Clone()
		chosen.Origin = models.OriginLocal
		resolution = models.ResolutionKeptLocal
	case KeepRemote:
		chosen = entry.Remote.Clone()
		chosen.Origin = models.OriginRemote
		resolution = models.ResolutionKeptRemote
	default:
		return fmt.Errorf("unknown resolution choice: %q", choice)
	}
	chosen.UpdatedAt = time.Now()

	// Применяем выбранный снапшот, если запись еще существует
	_, err = l.quotes.Get(ctx, entry.QuoteID)
	switch {
	case err == nil:
		if err := l.quotes.Upsert(ctx, chosen); err != nil {
			return fmt.Errorf("failed to apply resolution: %w", err)
		}
	case errors.Is(err, storage.ErrQuoteNotFound):
		// Запись удалили после обнаружения конфликта - no-op по контенту
		l.logger.Warn("Resolving stale conflict, record no longer exists",
			"quote_id", entry.QuoteID)
	default:
		return fmt.Errorf("failed to look up quote: %w", err)
	}

	entries[index].Resolved = true
	entries[index].Resolution = resolution

	if err := l.log.SaveLog(ctx, entries); err != nil {
		return fmt.Errorf("failed to save conflict log: %w", err)
	}

	l.logger.Info("Conflict resolved",
		"quote_id", entry.QuoteID,
		"resolution", resolution)
	l.notifyChange(entries)
	return nil
}

// Clear wipes the whole conflict history.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.log.SaveLog(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear conflict log: %w", err)
	}
	l.notifyChange(nil)
	return nil
}

func (l *Ledger) notifyChange(entries []models.ConflictEntry) {
	if l.onChange != nil {
		l.onChange(countUnresolved(entries))
	}
}

func countUnresolved(entries []models.ConflictEntry) int {
	count := 0
	for _, e := range entries {
		if !e.Resolved {
			count++
		}
	}
	return count
}
