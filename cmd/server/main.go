package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brainhub/internal/app"
	"brainhub/internal/config"
	"brainhub/internal/corpus"
	"brainhub/internal/storage"
	"brainhub/internal/storage/sqlite"
	httpTransport "brainhub/internal/transport/http"
	"brainhub/internal/transport/ws"
)

//go:embed web/*
var webFS embed.FS

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Set up logger
	var logger *slog.Logger
	logOpts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	if cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, logOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	}

	slog.SetDefault(logger)

	logger.Info("starting brain games hub",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	site, err := fs.Sub(webFS, "web")
	if err != nil {
		logger.Error("failed to get web subdirectory", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Leaderboard storage
	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open leaderboard database", "path", cfg.Leaderboard.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	loc, _ := cfg.Location()
	leaderboard := app.NewLeaderboard(ctx, store, logger.With("component", "leaderboard"),
		app.WithLocation(loc),
		app.WithStorageKey(cfg.Leaderboard.StorageKey),
		app.WithStrictInvariants(cfg.IsDevelopment()),
	)

	if cfg.Leaderboard.CleanupInterval > 0 {
		go leaderboard.RunCleanup(ctx, cfg.Leaderboard.CleanupInterval)
	}

	// Vocabulary
	var source app.CorpusSource
	if cfg.Vocabulary.URL != "" {
		source = corpus.NewHTTPSource(cfg.Vocabulary.URL)
	} else {
		source = corpus.NewFSSource(site, cfg.Vocabulary.Path)
	}
	vocabulary := app.NewVocabularyLoader(ctx, source, logger.With("component", "vocabulary"),
		app.WithFetchTimeout(cfg.Vocabulary.FetchTimeout),
	)

	// Live leaderboard feed
	feed := ws.NewHub(leaderboard, logger.With("component", "feed"))
	defer feed.Close()

	// Create HTTP server
	server := httpTransport.NewServer(cfg, leaderboard, vocabulary, feed, logger, site)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// openStore opens the SQLite store when a path is configured. Outside
// production a database that fails to open degrades to an in-memory store.
func openStore(cfg *config.Config, logger *slog.Logger) (storage.Store, error) {
	if cfg.Leaderboard.DBPath == "" {
		logger.Info("no leaderboard database configured, scores are kept in memory")
		return storage.NewMemory(), nil
	}

	store, err := sqlite.Open(cfg.Leaderboard.DBPath)
	if err != nil {
		if cfg.IsProduction() {
			return nil, err
		}
		logger.Warn("failed to open leaderboard database, scores are kept in memory",
			"path", cfg.Leaderboard.DBPath,
			"error", err,
		)
		return storage.NewMemory(), nil
	}
	return store, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
