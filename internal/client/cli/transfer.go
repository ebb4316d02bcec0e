package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	// Без аргумента пишем в stdout
	if len(args) == 0 {
		return c.dataService.Export(ctx, c.io)
	}

	file, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := c.dataService.Export(ctx, file); err != nil {
		return fmt.Errorf("failed to export quotes: %w", err)
	}

	c.io.Printf("✓ Exported to %s\n", args[0])

	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: quotesync import FILE")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	imported, err := c.dataService.Import(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to import quotes: %w", err)
	}

	c.io.Printf("✓ Imported %d quote(s)\n", imported)

	return nil
}

func (c *Cli) runSeed(ctx context.Context) error {
	seeded, err := c.dataService.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed quotes: %w", err)
	}

	if seeded == 0 {
		c.io.Println("Store is not empty, nothing seeded.")
		return nil
	}

	c.io.Printf("✓ Seeded %d starter quote(s)\n", seeded)

	return nil
}
