package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store backends accepted by STREAMING_STORE.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

// Config holds the process configuration. Every value has a default, so an empty
// environment keeps the catalog in streaming_service_data.json in the working directory.
type Config struct {
	// Store selects the persistence backend: file, badger or sqlite.
	Store string `env:"STREAMING_STORE" envDefault:"file"`
	// DataFile is the snapshot path used by the file backend.
	DataFile string `env:"STREAMING_DATA_FILE" envDefault:"streaming_service_data.json"`
	// BadgerDir is the directory used by the badger backend.
	BadgerDir string `env:"STREAMING_BADGER_DIR" envDefault:"streaming_service_data.badger"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `env:"STREAMING_SQLITE_PATH" envDefault:"streaming_service_data.db"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	// LogFile enables a rotating log file when set.
	LogFile string `env:"LOG_FILE"`

	ServiceName        string `env:"SERVICE_NAME" envDefault:"streaming-services"`
	ServiceVersion     string `env:"SERVICE_VERSION" envDefault:"0.1.0"`
	ServiceEnvironment string `env:"SERVICE_ENVIRONMENT" envDefault:"lcl"`
	// ExporterEndpoint is the OTLP gRPC endpoint. Exporters are disabled when empty.
	ExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to env.ParseAs: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreBadger, StoreSQLite:
	default:
		return fmt.Errorf("invalid STREAMING_STORE %q, expected one of file, badger, sqlite", c.Store)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel converts LogLevel into a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q, expected one of debug, info, warn, error", c.LogLevel)
}
