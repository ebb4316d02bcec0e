package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	quotes, err := c.dataService.ListQuotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	c.io.Printf("Quotes stored: %d\n", len(quotes))

	category, err := c.dataService.SelectedCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to get category filter: %w", err)
	}
	if category != "" && category != "all" {
		c.io.Printf("Category filter: %s\n", category)
	} else {
		c.io.Println("Category filter: all")
	}

	at, syncStatus, err := c.settings.GetLastSync(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync: %w", err)
	}
	if at.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s (%s)\n", at.Format(time.RFC3339), syncStatus)
	}

	unresolved, err := c.ledger.UnresolvedCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count conflicts: %w", err)
	}
	if unresolved > 0 {
		c.io.Printf("⚠️  Unresolved conflicts: %d\n", unresolved)
		c.io.Println("Run 'quotesync conflicts' to review them.")
	} else {
		c.io.Println("✓ No unresolved conflicts")
	}

	return nil
}
