// Package merge implements the reconciliation of a remote batch against the
// local quote collection. Reconcile is a pure function: it never touches
// storage and never mutates its inputs, so one call is one deterministic
// merge decision per remote record.
package merge

import (
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// Result contains the outcome of one reconciliation.
type Result struct {
	// Quotes is the full new collection, ready for ReplaceAll.
	Quotes []*models.Quote

	// Conflicts holds the newly detected divergences in detection order.
	Conflicts []models.ConflictEntry

	// Summary counts what the cycle did.
	Summary models.SyncSummary
}

// Reconcile merges a remote batch into the local collection.
//
// Для каждой удаленной записи, независимо от порядка обработки:
//   - записи нет локально: добавляем как есть (added)
//   - контент совпадает: обновляем только UpdatedAt и Origin, это не конфликт
//   - контент расходится: remote-wins, локальная версия замещается, обе
//     версии замораживаются в ConflictEntry (updated + conflict)
//
// Разница только в UpdatedAt или Origin конфликтом не считается.
func Reconcile(local, remote []*models.Quote, now time.Time) Result {
	// Копируем локальную коллекцию, чтобы не трогать вход
	quotes := make([]*models.Quote, 0, len(local)+len(remote))
	indexByID := make(map[string]int, len(local))
	for _, q := range local {
		indexByID[q.ID] = len(quotes)
		quotes = append(quotes, q.Clone())
	}

	result := Result{
		Summary: models.SyncSummary{Status: models.SyncStatusOK},
	}

	for _, remoteQuote := range remote {
		idx, exists := indexByID[remoteQuote.ID]
		if !exists {
			// Записи нет локально - вставляем серверную версию
			indexByID[remoteQuote.ID] = len(quotes)
			quotes = append(quotes, remoteQuote.Clone())
			result.Summary.Added++
			continue
		}

		localQuote := quotes[idx]
		if localQuote.ContentEquals(remoteQuote) {
			// Контент сошелся: конвергенция, не конфликт
			converged := localQuote.Clone()
			converged.UpdatedAt = remoteQuote.UpdatedAt
			converged.Origin = models.OriginRemote
			quotes[idx] = converged
			continue
		}

		// Конфликт: remote-wins, обе версии фиксируются в ledger
		result.Conflicts = append(result.Conflicts,
			models.NewConflictEntry(localQuote, remoteQuote, now))
		quotes[idx] = remoteQuote.Clone()
		result.Summary.Updated++
		result.Summary.Conflicts++
	}

	result.Quotes = quotes
	return result
}
