package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-expenses/internal/config"
)

var keys = []string{"PORT", "DATABASE_PATH", "LOG_LEVEL", "CORS_ORIGINS", "MAX_BODY_BYTES", "METRICS_ENABLED"}

// unsetAll removes every config variable for the duration of the test so the
// struct-tag defaults apply.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoad_defaults verifies that every value falls back to its default when
// nothing is set.
func TestLoad_defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load("")

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "data/travel_expenses.db", cfg.DatabasePath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.True(t, cfg.MetricsEnabled)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/var/lib/travel/expenses.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load("")

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/var/lib/travel/expenses.db", cfg.DatabasePath)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
	require.False(t, cfg.MetricsEnabled)
}

// TestLoad_envFile verifies that a .env file fills unset variables but never
// overrides the real environment.
func TestLoad_envFile(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "7070")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=6060\nDATABASE_PATH=/tmp/from-file.db\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DATABASE_PATH") })

	cfg, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, "/tmp/from-file.db", cfg.DatabasePath)
}

// TestLoad_missingEnvFileIsIgnored verifies that pointing at a file that does
// not exist falls back to the environment.
func TestLoad_missingEnvFileIsIgnored(t *testing.T) {
	unsetAll(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))

	require.NoError(t, err)
}

// TestLoad_invalid verifies that bad values are rejected and named.
func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"PORT", "70000"},
		{"LOG_LEVEL", "verbose"},
		{"MAX_BODY_BYTES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load("")

			require.Error(t, err)
			require.ErrorContains(t, err, tt.key)
		})
	}
}
