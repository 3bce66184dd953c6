package handler

import (
	"net/http"
)

// CreateExpense handles POST /trips/{tripId}/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}
	var body ExpenseRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, "trip")
		return
	}
	e, err := requestToExpense(body)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}
	e.TripID = tripID

	created, err := s.expenses.Create(r.Context(), e)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, expenseToResponse(created))
}

// ListTripExpenses handles GET /trips/{tripId}/expenses.
func (s *Server) ListTripExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	expenses, err := s.expenses.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, expensesToResponse(expenses))
}

// ListExpensesInRange handles GET /expenses?start=&end=.
func (s *Server) ListExpensesInRange(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dateRange(r)
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	expenses, err := s.expenses.ListInRange(r.Context(), rng)
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	writeJSON(w, http.StatusOK, expensesToResponse(expenses))
}

// GetExpense handles GET /expenses/{expenseId}.
func (s *Server) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "expenseId")
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	e, err := s.expenses.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(e))
}

// UpdateExpense handles PUT /expenses/{expenseId}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "expenseId")
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}
	var body ExpenseRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, "expense")
		return
	}
	e, err := requestToExpense(body)
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}
	e.ID = id

	updated, err := s.expenses.Update(r.Context(), e)
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	writeJSON(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense handles DELETE /expenses/{expenseId}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "expenseId")
	if err != nil {
		writeError(w, r, err, "expense")
		return
	}

	if err := s.expenses.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
