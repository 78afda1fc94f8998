package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Leaderboard.StorageKey != "leaderboards" {
		t.Fatalf("expected default storage key, got %q", cfg.Leaderboard.StorageKey)
	}
	if cfg.Leaderboard.CleanupInterval != time.Hour {
		t.Fatalf("expected hourly cleanup, got %s", cfg.Leaderboard.CleanupInterval)
	}
	if cfg.Vocabulary.FetchTimeout != 10*time.Second {
		t.Fatalf("expected 10s fetch timeout, got %s", cfg.Vocabulary.FetchTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development by default")
	}
	if cfg.GetAddr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %s", cfg.GetAddr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LEADERBOARD_DB_PATH", "/tmp/brainhub.db")
	t.Setenv("LEADERBOARD_TIMEZONE", "UTC")
	t.Setenv("VOCABULARY_FETCH_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || !cfg.IsProduction() {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Leaderboard.DBPath != "/tmp/brainhub.db" {
		t.Fatalf("unexpected db path %q", cfg.Leaderboard.DBPath)
	}
	if cfg.Vocabulary.FetchTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected fetch timeout %s", cfg.Vocabulary.FetchTimeout)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v err=%v", loc, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"bad duration", "VOCABULARY_FETCH_TIMEOUT", "soon", "parse env:"},
		{"bad timezone", "LEADERBOARD_TIMEZONE", "Mars/Olympus", "load timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}
