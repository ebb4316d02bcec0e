package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Fetching quotes from server...")

	summary, err := c.syncService.SyncOnce(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.printSummary(*summary)

	return nil
}

func (c *Cli) printSummary(summary models.SyncSummary) {
	c.io.Printf("Added:     %d quote(s)\n", summary.Added)
	c.io.Printf("Updated:   %d quote(s)\n", summary.Updated)
	if summary.Conflicts > 0 {
		c.io.Printf("Conflicts: %d (server version kept)\n", summary.Conflicts)
		c.io.Println()
		c.io.Println("Run 'quotesync conflicts' to review, or 'quotesync resolve' to override.")
	}
}
