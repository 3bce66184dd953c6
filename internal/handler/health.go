package handler

import (
	"log/slog"
	"net/http"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the store is reachable and
// its schema is in place, and 503 with {"status":"degraded"} otherwise.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Check(r.Context()); err != nil {
			slog.WarnContext(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListCurrencies handles GET /currencies.
func (s *Server) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	out := make([]Currency, len(domain.Currencies))
	for i, c := range domain.Currencies {
		out[i] = Currency{Code: c.Code, Name: c.Name}
	}
	writeJSON(w, http.StatusOK, out)
}
