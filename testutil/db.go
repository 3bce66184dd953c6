// Package testutil provides shared helpers for integration tests.
// The store is embedded, so every helper works without external services:
// each test gets its own SQLite file under t.TempDir().
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkordes/travel-expenses/internal/store"
)

// NewStore opens a fresh store in a temporary directory and applies all
// migrations. The store is closed automatically when the test finishes.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	s := NewEmptyStore(t)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("testutil.NewStore: ensure schema: %v", err)
	}
	return s
}

// NewEmptyStore opens a fresh store without applying migrations.
// Use this when the test drives the schema lifecycle itself.
func NewEmptyStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "travel_expenses.db")
	s, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("testutil.NewEmptyStore: open: %v", err)
	}

	t.Cleanup(func() { s.Close() })
	return s
}
