package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
)

// expenseRequest is the POST body for a new expense. PaidBy is an optional
// display-name override for guests, who carry no session token.
type expenseRequest struct {
	domain.ExpenseDraft
	PaidBy string `json:"paidBy"`
}

// ListExpenses handles GET /api/trips/{tripID}/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, expenses)
}

// AddExpense handles POST /api/trips/{tripID}/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	expense, err := s.expenses.Add(r.Context(), chi.URLParam(r, "tripID"),
		req.ExpenseDraft, actorName(r.Context(), req.PaidBy))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, expense)
}

// ExpenseSummary handles GET /api/trips/{tripID}/expenses/summary.
func (s *Server) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.expenses.Summary(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

// DeleteExpense handles DELETE /api/trips/{tripID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := s.expenses.Remove(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "expenseID"))
	if err != nil {
		respondError(w, r, err, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
