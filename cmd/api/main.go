// Package main is the entry point for the Travel Expenses API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/travel-expenses/internal/config"
	"github.com/pkordes/travel-expenses/internal/handler"
	"github.com/pkordes/travel-expenses/internal/middleware"
	"github.com/pkordes/travel-expenses/internal/repo"
	"github.com/pkordes/travel-expenses/internal/service"
	"github.com/pkordes/travel-expenses/internal/store"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load(".env")
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	st, err := store.Open(startCtx, cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// A failed migration does not stop the server: /healthz reports degraded
	// and data endpoints return errors instead of silently empty results.
	if err := st.EnsureSchema(startCtx); err != nil {
		slog.Error("schema setup failed, serving in degraded mode", "error", err)
	} else {
		slog.Info("database ready", "path", st.Path())
	}

	// --- Services ---------------------------------------------------------
	repos := repo.New(st.DB())
	tx := repo.NewTransactor(st.DB())

	srv := handler.NewServer(
		service.NewTripService(repos.Trips, tx),
		service.NewExpenseService(repos.Trips, repos.Expenses, tx),
		service.NewDashboardService(repos.Trips, repos.Expenses),
		service.NewExportService(repos.Trips, repos.Expenses, nil),
		st,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics, err := middleware.NewMetrics(reg)
		if err != nil {
			slog.Error("failed to register metrics", "error", err)
			os.Exit(1)
		}
		r.Use(metrics.Handler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	handler.HandlerFromMux(srv, r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
