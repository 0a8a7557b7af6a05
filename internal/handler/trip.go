package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/token"
)

// tripCreatedResponse is a trip plus the client route to navigate to.
type tripCreatedResponse struct {
	domain.Trip
	Route string `json:"route"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var draft domain.TripDraft
	if err := decodeJSON(r, &draft); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	creator := domain.Participant{}
	if claims, ok := token.ActorFromContext(r.Context()); ok {
		creator.ID = claims.UserID
		creator.Name = claims.FullName
	}

	trip, err := s.trips.Create(r.Context(), draft, creator)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, r, http.StatusCreated, tripCreatedResponse{
		Trip:  trip,
		Route: "/trip/" + trip.ID,
	})
}

// ListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"data": trips,
		"pagination": map[string]int{
			"page":  params.Page,
			"limit": params.Limit,
			"total": total,
		},
	})
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var draft domain.TripDraft
	if err := decodeJSON(r, &draft); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	trip, err := s.trips.Update(r.Context(), chi.URLParam(r, "tripID"), draft)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Remove(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter. Malformed values are
// treated as absent.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
