package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
)

// activityRequest is the POST body for a new suggestion. SuggestedBy is an
// optional display-name override for guests, who carry no session token.
type activityRequest struct {
	domain.ActivityDraft
	SuggestedBy string `json:"suggestedBy"`
}

// voteRequest is the POST body for a vote. Actor is optional, like
// activityRequest.SuggestedBy.
type voteRequest struct {
	Direction string `json:"direction"`
	Actor     string `json:"actor"`
}

// ListActivities handles GET /api/trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.activities.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, activities)
}

// AddActivity handles POST /api/trips/{tripID}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	activity, err := s.activities.Add(r.Context(), chi.URLParam(r, "tripID"),
		req.ActivityDraft, actorName(r.Context(), req.SuggestedBy))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, activity)
}

// VoteActivity handles POST /api/trips/{tripID}/activities/{activityID}/vote.
func (s *Server) VoteActivity(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	activity, err := s.activities.Vote(r.Context(), chi.URLParam(r, "tripID"),
		chi.URLParam(r, "activityID"), req.Direction, actorName(r.Context(), req.Actor))
	if err != nil {
		respondError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, r, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /api/trips/{tripID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	err := s.activities.Remove(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "activityID"))
	if err != nil {
		respondError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
