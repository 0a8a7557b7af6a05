package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
)

// joinRequest is the POST body for joining a trip as a guest.
type joinRequest struct {
	Name string `json:"name"`
}

// guestJoinedResponse is the guest session plus the client route to navigate
// to — the guest lands on the trip dashboard with their id in the query.
type guestJoinedResponse struct {
	domain.GuestSession
	Route string `json:"route"`
}

// JoinAsGuest handles POST /api/trips/{tripID}/join.
func (s *Server) JoinAsGuest(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	tripID := chi.URLParam(r, "tripID")
	session, err := s.guests.Join(r.Context(), tripID, req.Name)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, r, http.StatusCreated, guestJoinedResponse{
		GuestSession: session,
		Route:        "/trip-dashboard/" + tripID + "?guest=" + session.ID,
	})
}

// CurrentGuest handles GET /api/trips/{tripID}/guest.
func (s *Server) CurrentGuest(w http.ResponseWriter, r *http.Request) {
	session, err := s.guests.CurrentForTrip(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "no guest session for this trip")
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

// GuestAssociation handles GET /api/guests/{guestID}/association.
func (s *Server) GuestAssociation(w http.ResponseWriter, r *http.Request) {
	assoc, err := s.guests.Association(r.Context(), chi.URLParam(r, "guestID"))
	if err != nil {
		respondError(w, r, err, "guest association not found")
		return
	}
	writeJSON(w, r, http.StatusOK, assoc)
}
