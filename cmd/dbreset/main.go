// Command dbreset drops the Travel Expenses schema, deleting every trip and
// expense, and optionally recreates it empty. It is a development tool; the
// API server never drops tables.
//
//	dbreset -confirm            drop everything
//	dbreset -confirm -recreate  drop, then migrate back to an empty schema
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkordes/travel-expenses/internal/config"
	"github.com/pkordes/travel-expenses/internal/store"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	path := flag.String("db", cfg.DatabasePath, "path of the SQLite database file")
	confirm := flag.Bool("confirm", false, "required: acknowledge that all data is deleted")
	recreate := flag.Bool("recreate", false, "apply migrations again after dropping")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if !*confirm {
		fmt.Fprintf(os.Stderr, "refusing to drop %s without -confirm\n", *path)
		os.Exit(2)
	}

	if err := run(*path, *recreate); err != nil {
		slog.Error("reset failed", "path", *path, "error", err)
		os.Exit(1)
	}
}

func run(path string, recreate bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DropSchema(ctx); err != nil {
		return err
	}
	if !recreate {
		return nil
	}
	return st.EnsureSchema(ctx)
}
