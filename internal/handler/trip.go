package handler

import (
	"net/http"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	created, err := s.trips.Create(r.Context(), body.Name)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips. Trips are ordered newest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripsToResponse(trips))
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// RenameTrip handles PATCH /trips/{tripId}.
func (s *Server) RenameTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}
	var body TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	updated, err := s.trips.Rename(r.Context(), id, body.Name)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// SetTripCurrency handles PUT /trips/{tripId}/currency.
func (s *Server) SetTripCurrency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}
	var body CurrencyRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	updated, err := s.trips.SetCurrency(r.Context(), id, body.Currency)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripId}. The trip's expenses go with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
