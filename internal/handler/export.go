package handler

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-expenses/internal/export"
)

// ListExportTrips handles GET /export/trips?start=&end=.
// Export candidates are trips created inside the window.
func (s *Server) ListExportTrips(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dateRange(r)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	trips, err := s.export.TripsInRange(r.Context(), rng)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripsToResponse(trips))
}

// GetExport handles GET /export?trip_id=1&trip_id=2.
// The response is a CSV attachment. The file is encoded into a buffer first
// so an encoding failure can still produce a JSON error.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	ids, err := tripIDs(r)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	file, err := s.export.Build(r.Context(), ids)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, file.Rows); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	h := w.Header()
	h.Set("Content-Type", export.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("X-Export-ID", file.ID.String())
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "export write interrupted", "export_id", file.ID, "error", err)
	}
}
