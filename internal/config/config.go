package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Leaderboard LeaderboardConfig
	Vocabulary  VocabularyConfig
	Logging     LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Env  string `env:"ENV" envDefault:"development"` // "development" or "production"
}

// LeaderboardConfig holds leaderboard persistence configuration
type LeaderboardConfig struct {
	// DBPath is the SQLite file holding the boards. Empty keeps them in memory.
	DBPath     string `env:"LEADERBOARD_DB_PATH"`
	StorageKey string `env:"LEADERBOARD_STORAGE_KEY" envDefault:"leaderboards"`
	Timezone   string `env:"LEADERBOARD_TIMEZONE" envDefault:"Local"`
	// CleanupInterval is how often stale entries are pruned. Zero prunes only at startup.
	CleanupInterval time.Duration `env:"LEADERBOARD_CLEANUP_INTERVAL" envDefault:"1h"`
}

// VocabularyConfig holds corpus loading configuration
type VocabularyConfig struct {
	// URL of the corpus document. Empty reads vocabulary.json from the embedded site.
	URL          string        `env:"VOCABULARY_URL"`
	Path         string        `env:"VOCABULARY_PATH" envDefault:"vocabulary.json"`
	FetchTimeout time.Duration `env:"VOCABULARY_FETCH_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Location returns the time zone used for daily boards
func (c *Config) Location() (*time.Location, error) {
	if c.Leaderboard.Timezone == "" || c.Leaderboard.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Leaderboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Leaderboard.Timezone, err)
	}
	return loc, nil
}
