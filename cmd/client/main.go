package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/cli"
	"github.com/iudanet/quotesync/internal/client/conflicts"
	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/iocli"
	"github.com/iudanet/quotesync/internal/client/storage/boltdb"
	"github.com/iudanet/quotesync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "https://jsonplaceholder.typicode.com/posts", "Remote quotes endpoint")
	dbPath := flag.String("db", "quotesync-client.db", "Path to local database")
	fetchLimit := flag.Int("limit", sync.DefaultFetchLimit, "Quotes fetched from the server per sync")
	interval := flag.Duration("interval", sync.DefaultInterval, "Periodic sync interval for 'watch'")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Контекст отменяется по Ctrl+C, этим завершается и watch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы: boltStorage реализует все три storage интерфейса
	apiClient := api.NewClient(*serverURL, logger)
	ledger := conflicts.NewLedger(boltStorage, boltStorage, logger)
	dataService := data.NewService(apiClient, boltStorage, boltStorage, logger)
	syncService := sync.NewService(apiClient, boltStorage, boltStorage, ledger, *fetchLimit, logger)
	scheduler := sync.NewScheduler(syncService, *interval, sync.DefaultWarmup, logger)

	c := cli.New(iocli.NewStdio(), dataService, syncService, scheduler, ledger, boltStorage)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("QuoteSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
