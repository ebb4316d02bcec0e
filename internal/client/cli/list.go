package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	category := ""
	if len(args) > 0 {
		category = args[0]
		// Запоминаем выбранный фильтр, как последний использованный
		if err := c.dataService.SelectCategory(ctx, category); err != nil {
			return fmt.Errorf("failed to save category filter: %w", err)
		}
	} else {
		// Без аргумента используем сохраненный фильтр
		saved, err := c.dataService.SelectedCategory(ctx)
		if err != nil {
			return fmt.Errorf("failed to get category filter: %w", err)
		}
		category = saved
	}

	quotes, err := c.dataService.ListByCategory(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to list quotes: %w", err)
	}

	if category == "" || category == "all" {
		c.io.Println("=== Quotes ===")
	} else {
		c.io.Printf("=== Quotes: %s ===\n", category)
	}
	c.io.Println()

	if len(quotes) == 0 {
		c.io.Println("No quotes found.")
		c.io.Println()
		c.io.Println("Use 'quotesync add' or 'quotesync sync' to get some.")
		return nil
	}

	for i, quote := range quotes {
		c.io.Printf("%d. \"%s\"\n", i+1, quote.Text)
		c.io.Printf("   Author:   %s\n", quote.Author)
		c.io.Printf("   Category: %s\n", quote.Category)
		c.io.Printf("   ID:       %s (%s)\n", quote.ID, quote.Origin)
		c.io.Println()
	}

	c.io.Printf("Total: %d quote(s)\n", len(quotes))

	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	categories, err := c.dataService.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	c.io.Println("=== Categories ===")
	c.io.Println()

	if len(categories) == 0 {
		c.io.Println("No categories yet.")
		return nil
	}

	for _, category := range categories {
		c.io.Printf("  %s\n", category)
	}

	return nil
}
