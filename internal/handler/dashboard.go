package handler

import (
	"net/http"
)

// GetDashboard handles GET /dashboard?start=&end=.
// Both bounds default to today.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dateRange(r)
	if err != nil {
		writeError(w, r, err, "dashboard")
		return
	}

	d, err := s.dashboard.Summary(r.Context(), rng)
	if err != nil {
		writeError(w, r, err, "dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboardToResponse(d))
}
