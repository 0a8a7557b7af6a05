package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
)

// updateResponse is a feed entry with the display-friendly relative time
// derived at read time.
type updateResponse struct {
	domain.Update
	TimeAgo string `json:"timeAgo"`
}

// ListUpdates handles GET /api/trips/{tripID}/updates.
func (s *Server) ListUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := s.feed.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}

	now := time.Now()
	out := make([]updateResponse, len(updates))
	for i, u := range updates {
		out[i] = updateResponse{Update: u, TimeAgo: domain.RelativeTime(now, u.RecordedAt)}
	}
	writeJSON(w, r, http.StatusOK, out)
}
