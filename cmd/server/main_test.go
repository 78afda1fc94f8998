package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"brainhub/internal/config"
	"brainhub/internal/storage"
	"brainhub/internal/storage/sqlite"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpenStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	mem, err := openStore(cfg, logger)
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	defer mem.Close()
	if _, ok := mem.(*storage.Memory); !ok {
		t.Fatalf("expected memory store without a path, got %T", mem)
	}

	cfg.Leaderboard.DBPath = filepath.Join(t.TempDir(), "scores.db")
	db, err := openStore(cfg, logger)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer db.Close()
	if _, ok := db.(*sqlite.Store); !ok {
		t.Fatalf("expected sqlite store, got %T", db)
	}
	if err := db.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
}

func TestOpenStoreUnusablePath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Leaderboard.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "scores.db")

	cfg.Server.Env = "development"
	store, err := openStore(cfg, logger)
	if err != nil {
		t.Fatalf("expected memory fallback in development, got %v", err)
	}
	if _, ok := store.(*storage.Memory); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	cfg.Server.Env = "production"
	if _, err := openStore(cfg, logger); err == nil {
		t.Fatal("expected production to refuse the memory fallback")
	}
}

func TestEmbeddedVocabulary(t *testing.T) {
	data, err := webFS.ReadFile("web/vocabulary.json")
	if err != nil {
		t.Fatalf("read embedded vocabulary: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("embedded vocabulary is empty")
	}
}
