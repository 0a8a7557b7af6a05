package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON serializes v with the given status. Encoding failures are logged;
// by then the status line is already on the wire, so nothing else can be done.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "response encoding failed", "error", err)
	}
}

// decodeJSON parses the request body into v. Unknown fields are tolerated —
// clients send superset payloads and the stores ignore what they don't use.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
