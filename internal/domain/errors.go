package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by kv and store functions when the requested
// record does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by store functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when a uniqueness rule is violated: an email that
// already holds an invitation for the trip, or an account registered with an
// email that is already taken. Handlers map this to HTTP 409 and surface it
// as a warning, not a hard failure.
var ErrDuplicate = errors.New("duplicate")

// ErrInvalidCredentials is returned by AccountStore.LogIn when the email is
// unknown or the password does not verify. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ConflictError is a duplicate conflict carrying the user-facing text for the
// HTTP 409 body, so handlers never have to guess it from the error string.
//
// ConflictError satisfies errors.Is(err, ErrDuplicate), mirroring how
// FieldErrors satisfies ErrValidation.
type ConflictError struct {
	Message string
}

// Error returns the user-facing conflict message.
func (e ConflictError) Error() string { return e.Message }

// Is reports ConflictError as a kind of ErrDuplicate for errors.Is chains.
func (e ConflictError) Is(target error) bool {
	return target == ErrDuplicate
}

// FieldErrors maps a form field name to a human-readable validation message.
// A submission is accepted only when the map is empty; validators fill in all
// failing fields rather than stopping at the first one, so the client can
// render every inline message at once.
//
// FieldErrors satisfies errors.Is(err, ErrValidation), so callers can treat
// field-level failures and plain validation sentinels uniformly.
type FieldErrors map[string]string

// Error joins the field messages in field-name order for log output.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is reports FieldErrors as a kind of ErrValidation for errors.Is chains.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// OrNil returns the map as an error, or nil when no field failed.
// A typed nil map assigned to an error interface would be non-nil, hence
// this helper.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
