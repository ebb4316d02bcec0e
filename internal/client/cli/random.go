package cli

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/iudanet/quotesync/internal/client/data"
)

func (c *Cli) runRandom(ctx context.Context, args []string) error {
	category := ""
	if len(args) > 0 {
		category = args[0]
	} else {
		saved, err := c.dataService.SelectedCategory(ctx)
		if err != nil {
			return fmt.Errorf("failed to get category filter: %w", err)
		}
		category = saved
	}

	quote, err := c.dataService.RandomQuote(ctx, category)
	if err != nil {
		if errors.Is(err, data.ErrNoQuotes) {
			c.io.Println("No quotes to show.")
			c.io.Println()
			c.io.Println("Use 'quotesync add' or 'quotesync sync' to get some.")
			return nil
		}
		return fmt.Errorf("failed to pick quote: %w", err)
	}

	tmpl, err := template.New("quote").Parse(quoteTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, quote); err != nil {
		return fmt.Errorf("failed to render quote: %w", err)
	}

	return nil
}
