package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/quotesync/internal/client/conflicts"
	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	entries, err := c.ledger.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load conflict history: %w", err)
	}

	c.io.Println("=== Conflict History ===")
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No conflicts recorded.")
		return nil
	}

	// Свежие сверху, индекс соответствует аргументу resolve
	for i, entry := range entries {
		c.io.Printf("[%d] %s  quote %s\n", i,
			entry.DetectedAt.Format(time.RFC3339), entry.QuoteID)
		c.io.Printf("    local:  \"%s\" — %s\n", entry.Local.Text, entry.Local.Author)
		c.io.Printf("    remote: \"%s\" — %s\n", entry.Remote.Text, entry.Remote.Author)
		switch {
		case entry.Resolved && entry.Resolution == models.ResolutionKeptLocal:
			c.io.Println("    status: resolved (kept local)")
		case entry.Resolved:
			c.io.Println("    status: resolved (kept remote)")
		default:
			c.io.Println("    status: unresolved (server version applied)")
		}
		c.io.Println()
	}

	c.io.Println("Use 'quotesync resolve INDEX local|remote' to re-resolve an entry.")

	return nil
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: quotesync resolve INDEX local|remote")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid conflict index %q: %w", args[0], err)
	}

	var choice conflicts.Choice
	switch args[1] {
	case "local":
		choice = conflicts.KeepLocal
	case "remote":
		choice = conflicts.KeepRemote
	default:
		return fmt.Errorf("invalid choice %q: use 'local' or 'remote'", args[1])
	}

	if err := c.ledger.Resolve(ctx, index, choice); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Printf("✓ Conflict %d resolved, %s version kept\n", index, args[1])

	return nil
}
