package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// invitationRequest is the POST body for sending an invitation. Inviter is an
// optional display-name override.
type invitationRequest struct {
	Email   string `json:"email"`
	Inviter string `json:"inviter"`
}

// ListInvitations handles GET /api/trips/{tripID}/invitations.
// ?status=pending narrows the list to invitations awaiting a response.
func (s *Server) ListInvitations(w http.ResponseWriter, r *http.Request) {
	list := s.invitations.List
	if r.URL.Query().Get("status") == "pending" {
		list = s.invitations.Pending
	}

	invitations, err := list(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusOK, invitations)
}

// SendInvitation handles POST /api/trips/{tripID}/invitations.
// A duplicate address for the trip is a 409, not a 422 — the client surfaces
// it as a warning.
func (s *Server) SendInvitation(w http.ResponseWriter, r *http.Request) {
	var req invitationRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	invitation, err := s.invitations.Send(r.Context(), chi.URLParam(r, "tripID"),
		req.Email, actorName(r.Context(), req.Inviter))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, invitation)
}

// AcceptInvitation handles POST /api/trips/{tripID}/invitations/{inviteID}/accept.
func (s *Server) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := s.invitations.Accept(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "inviteID"))
	if err != nil {
		respondError(w, r, err, "invitation not found")
		return
	}
	writeJSON(w, r, http.StatusOK, invitation)
}

// RevokeInvitation handles DELETE /api/trips/{tripID}/invitations/{inviteID}.
func (s *Server) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	err := s.invitations.Revoke(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "inviteID"))
	if err != nil {
		respondError(w, r, err, "invitation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
