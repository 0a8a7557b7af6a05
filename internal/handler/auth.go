package handler

import (
	"net/http"

	"github.com/tripsync/backend/internal/domain"
)

// signUpRequest is the POST body for account registration.
type signUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// logInRequest is the POST body for logging in.
type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse carries the redacted account and its session token. Route is
// set on sign-up only: new users land on the home page.
type authResponse struct {
	User  domain.UserAccount `json:"user"`
	Token string             `json:"token"`
	Route string             `json:"route,omitempty"`
}

// SignUp handles POST /api/auth/signup.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	user, err := s.accounts.SignUp(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err, "account not found")
		return
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		respondError(w, r, err, "account not found")
		return
	}

	writeJSON(w, r, http.StatusCreated, authResponse{
		User:  user.Redacted(),
		Token: signed,
		Route: "/",
	})
}

// LogIn handles POST /api/auth/login.
func (s *Server) LogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if err := decodeJSON(r, &req); err != nil {
		requestError(w, r, "request body must be valid JSON")
		return
	}

	user, err := s.accounts.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err, "account not found")
		return
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		respondError(w, r, err, "account not found")
		return
	}

	writeJSON(w, r, http.StatusOK, authResponse{
		User:  user.Redacted(),
		Token: signed,
	})
}

// LogOut handles POST /api/auth/logout.
func (s *Server) LogOut(w http.ResponseWriter, r *http.Request) {
	if err := s.accounts.SignOut(r.Context()); err != nil {
		respondError(w, r, err, "account not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /api/auth/me.
func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.accounts.Current(r.Context())
	if err != nil {
		respondError(w, r, err, "no user is signed in")
		return
	}
	writeJSON(w, r, http.StatusOK, user.Redacted())
}
