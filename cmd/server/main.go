package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/quotesync/internal/server/handlers"
	"github.com/iudanet/quotesync/internal/server/middleware"
	"github.com/iudanet/quotesync/internal/server/storage/sqlite"
	"github.com/iudanet/quotesync/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "quotesync-server.db", "Path to SQLite database")
	seed := flag.Bool("seed", true, "Seed starter posts into an empty database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(*addr, *dbPath, *seed, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string, seed bool, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем SQLite storage, миграции выполняются при старте
	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if seed {
		if err := seedPosts(ctx, store, logger); err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
	}

	// Роутинг
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", handlers.NewPostsHandler(logger, store).HandlePosts)
	mux.HandleFunc("/health", handlers.NewHealthHandler(logger, Version).Health)

	// Middleware цепочка: recovery снаружи, затем логирование и rate limit
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(100, time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr, "db", dbPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// seedPosts наполняет пустую базу стартовыми постами,
// чтобы свежий сервер сразу отдавал клиенту данные
func seedPosts(ctx context.Context, store *sqlite.Storage, logger *slog.Logger) error {
	count, err := store.CountPosts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []*api.Post{
		{UserID: 1, Title: "The best way to get started is to quit talking and begin doing.", Body: "Walt Disney"},
		{UserID: 1, Title: "Life is what happens when you're busy making other plans.", Body: "John Lennon"},
		{UserID: 1, Title: "Your time is limited, so don't waste it living someone else's life.", Body: "Steve Jobs"},
	}

	for _, post := range starters {
		if _, err := store.SavePost(ctx, post); err != nil {
			return err
		}
	}

	logger.Info("Seeded starter posts", "count", len(starters))

	return nil
}

func printVersion() {
	fmt.Printf("QuoteSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
