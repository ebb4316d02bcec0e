package sync

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/quotesync/internal/models"
)

// SummaryListener receives the summary of every completed cycle.
type SummaryListener func(summary models.SyncSummary)

// LedgerListener receives the unresolved conflict count after every
// ledger mutation.
type LedgerListener func(unresolved int)

// Notifier fans out core events to registered listeners, so the sync core
// carries no rendering dependency: the UI layer subscribes instead of being
// called directly.
type Notifier struct {
	mu      sync.RWMutex
	summary map[string]SummaryListener
	ledger  map[string]LedgerListener
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		summary: make(map[string]SummaryListener),
		ledger:  make(map[string]LedgerListener),
	}
}

// SubscribeSummary registers a listener for cycle summaries.
// Возвращает токен подписки для Unsubscribe.
func (n *Notifier) SubscribeSummary(fn SummaryListener) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.New().String()
	n.summary[id] = fn
	return id
}

// SubscribeLedger registers a listener for ledger-change events.
func (n *Notifier) SubscribeLedger(fn LedgerListener) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.New().String()
	n.ledger[id] = fn
	return id
}

// Unsubscribe removes the listener with the given token.
func (n *Notifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.summary, id)
	delete(n.ledger, id)
}

// NotifySummary delivers a cycle summary to all summary listeners.
func (n *Notifier) NotifySummary(summary models.SyncSummary) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, fn := range n.summary {
		fn(summary)
	}
}

// NotifyLedger delivers the unresolved count to all ledger listeners.
func (n *Notifier) NotifyLedger(unresolved int) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, fn := range n.ledger {
		fn(unresolved)
	}
}
