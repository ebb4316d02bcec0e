package cli

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

// runWatch запускает периодическую синхронизацию и печатает итог каждого
// цикла до отмены контекста (Ctrl+C).
func (c *Cli) runWatch(ctx context.Context) error {
	notifier := c.syncService.Notifier()

	summaryID := notifier.SubscribeSummary(func(summary models.SyncSummary) {
		if summary.Status == models.SyncStatusFailed {
			c.io.Println("✗ Sync failed, will retry on next tick")
			return
		}
		c.io.Printf("✓ Synced: %d added, %d updated, %d conflict(s)\n",
			summary.Added, summary.Updated, summary.Conflicts)
	})
	defer notifier.Unsubscribe(summaryID)

	ledgerID := notifier.SubscribeLedger(func(unresolved int) {
		if unresolved > 0 {
			c.io.Printf("  %d unresolved conflict(s) in the ledger\n", unresolved)
		}
	})
	defer notifier.Unsubscribe(ledgerID)

	c.io.Println("Watching for changes. Press Ctrl+C to stop.")
	c.io.Println()

	c.scheduler.Start(ctx)
	<-ctx.Done()
	c.scheduler.Stop()

	c.io.Println()
	c.io.Println("Stopped.")

	return nil
}
