// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables; defaults live in
// the struct tags.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT,default=8080"`

	// DatabasePath is the file of the embedded SQLite database. Parent
	// directories are created on open.
	DatabasePath string `env:"DATABASE_PATH,default=data/travel_expenses.db"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// CORSOriginsRaw is the comma-separated CORS_ORIGINS value; use CORSOrigins.
	CORSOriginsRaw string `env:"CORS_ORIGINS,default=http://localhost:5173"`

	// CORSOrigins is the list of allowed cross-origin request origins,
	// split from CORSOriginsRaw. Defaults to the Vite dev server.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES,default=1048576"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `env:"METRICS_ENABLED,default=true"`
}

// Load reads configuration from environment variables and returns a Config.
// When envFile is set and exists it is loaded first; variables already in the
// environment win over the file. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config.Load: env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = splitCSV(cfg.CORSOriginsRaw)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel returns LogLevel as a slog.Level. Load has already validated it.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// validate reports every invalid value at once.
func (c Config) validate() error {
	var problems []string

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %q is not a valid port", c.Port))
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		problems = append(problems, "DATABASE_PATH must not be empty")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.MaxBodyBytes <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
