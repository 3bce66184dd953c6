// Package store owns the embedded SQLite database handle: opening and closing
// it, creating and dropping the schema, and reporting whether it is usable.
// Repositories receive the handle from the composition root; nothing in this
// package knows about trips or expenses beyond the table names.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/migrations"
)

const (
	driverName = "sqlite"

	// versionTable is goose's bookkeeping table. DropSchema removes it too so
	// the next EnsureSchema starts from version 0.
	versionTable = "goose_db_version"
)

// schemaTables are the tables EnsureSchema creates, in drop order.
var schemaTables = []string{"expenses", "trips"}

// Store is an open handle on the embedded database.
// It holds a single connection: SQLite serializes writers anyway, and one
// connection keeps transactions and plain queries from contending for locks.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database file at path and verifies it answers.
// Foreign keys are switched on for every connection so ON DELETE CASCADE applies.
// Returns domain.ErrStoreUnavailable if the file cannot be opened.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store.Open: %w: database path is empty", domain.ErrStoreUnavailable)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store.Open: %w: create db directory: %w", domain.ErrStoreUnavailable, err)
	}

	db, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w: %w", domain.ErrStoreUnavailable, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: %w: ping: %w", domain.ErrStoreUnavailable, err)
	}

	return &Store{db: db, path: path}, nil
}

// DB returns the underlying handle for repositories and transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// EnsureSchema applies every pending migration. It is idempotent and safe to
// call on every start. Migrations run on a separate connection so they never
// wait on the store's single connection.
func (s *Store) EnsureSchema(ctx context.Context) error {
	migrateDB, err := sql.Open(driverName, dsn(s.path))
	if err != nil {
		return fmt.Errorf("store.EnsureSchema: open migration database: %w", err)
	}
	defer migrateDB.Close()

	provider, err := goose.NewProvider(goose.DialectSQLite3, migrateDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("store.EnsureSchema: create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("store.EnsureSchema: run migrations: %w", err)
	}
	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return nil
}

// DropSchema drops both tables and the migration bookkeeping unconditionally.
// It exists for development resets (cmd/dbreset) and is not wired to any
// request path.
func (s *Store) DropSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.DropSchema: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range append(schemaTables, versionTable) {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("store.DropSchema: drop %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store.DropSchema: commit: %w", err)
	}

	slog.WarnContext(ctx, "schema dropped", "path", s.path)
	return nil
}

// Check reports whether the store answers and the schema is in place.
// Returns domain.ErrStoreUnavailable otherwise.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("store.Check: %w: %w", domain.ErrStoreUnavailable, err)
	}

	const q = `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name IN ('trips', 'expenses')`

	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return fmt.Errorf("store.Check: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if n != len(schemaTables) {
		return fmt.Errorf("store.Check: %w: schema not initialized", domain.ErrStoreUnavailable)
	}
	return nil
}

// dsn builds the modernc.org/sqlite data source name for path.
func dsn(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
