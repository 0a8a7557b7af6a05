package middleware

import (
	"net/http"
	"strings"

	"github.com/tripsync/backend/internal/token"
)

// ClaimsParser parses a raw bearer token into session claims.
type ClaimsParser interface {
	Parse(raw string) (token.Claims, error)
}

// NewActor returns a middleware that attaches the session claims of the
// Authorization bearer token to the request context. It is best-effort by
// design: a missing, malformed or expired token leaves the request anonymous
// and never rejects it — tokens identify the actor for attribution, they do
// not gate access.
func NewActor(parser ClaimsParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if ok && raw != "" {
				if claims, err := parser.Parse(raw); err == nil {
					r = r.WithContext(token.WithActor(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
