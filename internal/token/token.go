// Package token issues and parses the HS256 session tokens handed out at
// sign-up and log-in. Tokens only identify the actor for feed entries and
// audit logging — no route requires one, so possession of a token grants
// nothing a request without one could not already do.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tripsync/backend/internal/domain"
)

// Claims is the payload carried by a session token.
type Claims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and parses session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager. ttl bounds how long issued tokens parse
// as valid.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token identifying the given account.
func (m *Manager) Issue(u domain.UserAccount) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token.Manager.Issue: %w", err)
	}
	return signed, nil
}

// Parse validates raw and returns its claims.
func (m *Manager) Parse(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("token.Manager.Parse: %w", err)
	}
	return claims, nil
}

// actorKey is the context key for the parsed claims of the current request.
type actorKey struct{}

// WithActor returns a context carrying the actor's claims.
func WithActor(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, actorKey{}, c)
}

// ActorFromContext returns the claims attached by the actor middleware.
// ok is false for unauthenticated requests.
func ActorFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(actorKey{}).(Claims)
	return c, ok
}
