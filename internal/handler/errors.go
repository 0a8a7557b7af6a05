package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tripsync/backend/internal/domain"
)

// errorResponse is the uniform error body of the API.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondError maps a store error onto the API's error contract:
//
//	FieldErrors / ErrValidation → 422 validation_error (+ per-field messages)
//	ErrNotFound                 → 404 not_found
//	ErrDuplicate                → 409 duplicate
//	ErrInvalidCredentials       → 401 invalid_credentials
//	anything else               → 500 internal
//
// The caller supplies the human-readable not-found message (e.g. "trip not
// found") because the handler is the layer that knows what was looked up.
func respondError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	var fields domain.FieldErrors
	switch {
	case errors.As(err, &fields):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Fields:  fields,
		}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:    "validation_error",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: errorDetail{
			Code:    "not_found",
			Message: notFoundMessage,
		}})
	case errors.Is(err, domain.ErrDuplicate):
		message := "duplicate entry"
		var conflict domain.ConflictError
		if errors.As(err, &conflict) {
			message = conflict.Message
		}
		writeJSON(w, r, http.StatusConflict, errorResponse{Error: errorDetail{
			Code:    "duplicate",
			Message: message,
		}})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: errorDetail{
			Code:    "invalid_credentials",
			Message: "Invalid email or password",
		}})
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: errorDetail{
			Code:    "internal",
			Message: "internal server error",
		}})
	}
}

// requestError rejects a request before it reaches a store (missing or
// malformed body).
func requestError(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: errorDetail{
		Code:    "bad_request",
		Message: message,
	}})
}
