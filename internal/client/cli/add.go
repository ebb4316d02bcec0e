package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	var text, author, category string

	if len(args) >= 3 {
		text, author, category = args[0], args[1], args[2]
	} else {
		// Интерактивный ввод, когда аргументы не переданы
		var err error
		if text, err = c.io.ReadInput("Quote text: "); err != nil {
			return fmt.Errorf("failed to read quote text: %w", err)
		}
		if author, err = c.io.ReadInput("Author: "); err != nil {
			return fmt.Errorf("failed to read author: %w", err)
		}
		if category, err = c.io.ReadInput("Category: "); err != nil {
			return fmt.Errorf("failed to read category: %w", err)
		}
	}

	quote, err := c.dataService.AddQuote(ctx, text, author, category)
	if err != nil {
		return fmt.Errorf("failed to add quote: %w", err)
	}

	c.io.Println("✓ Quote added")
	c.io.Printf("  ID:       %s\n", quote.ID)
	c.io.Printf("  Category: %s\n", quote.Category)

	return nil
}
