// Package handler implements the HTTP handlers for the TripSync API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, activity.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/token"
)

// The store interfaces are defined here, in the consumer package, following
// the Go convention: "accept interfaces, return concrete types". Handler
// tests inject mocks without touching the kv layer.

// TripStorer defines the trip operations the handlers depend on.
type TripStorer interface {
	Create(ctx context.Context, draft domain.TripDraft, creator domain.Participant) (domain.Trip, error)
	Get(ctx context.Context, id string) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int, error)
	Update(ctx context.Context, id string, draft domain.TripDraft) (domain.Trip, error)
	Remove(ctx context.Context, id string) error
}

// ActivityStorer defines the itinerary operations the handlers depend on.
type ActivityStorer interface {
	Add(ctx context.Context, tripID string, draft domain.ActivityDraft, actor string) (domain.Activity, error)
	Vote(ctx context.Context, tripID, activityID, direction, actor string) (domain.Activity, error)
	List(ctx context.Context, tripID string) ([]domain.Activity, error)
	Remove(ctx context.Context, tripID, activityID string) error
}

// ExpenseStorer defines the expense operations the handlers depend on.
type ExpenseStorer interface {
	Add(ctx context.Context, tripID string, draft domain.ExpenseDraft, actor string) (domain.Expense, error)
	List(ctx context.Context, tripID string) ([]domain.Expense, error)
	Summary(ctx context.Context, tripID string) (domain.ExpenseSummary, error)
	Remove(ctx context.Context, tripID, expenseID string) error
}

// InvitationStorer defines the invitation operations the handlers depend on.
type InvitationStorer interface {
	Send(ctx context.Context, tripID, email, inviter string) (domain.Invitation, error)
	Accept(ctx context.Context, tripID, invitationID string) (domain.Invitation, error)
	Revoke(ctx context.Context, tripID, invitationID string) error
	List(ctx context.Context, tripID string) ([]domain.Invitation, error)
	Pending(ctx context.Context, tripID string) ([]domain.Invitation, error)
}

// GuestStorer defines the guest-session operations the handlers depend on.
type GuestStorer interface {
	Join(ctx context.Context, tripID, name string) (domain.GuestSession, error)
	CurrentForTrip(ctx context.Context, tripID string) (domain.GuestSession, error)
	Association(ctx context.Context, guestID string) (domain.GuestAssociation, error)
}

// AccountStorer defines the account operations the handlers depend on.
type AccountStorer interface {
	SignUp(ctx context.Context, fullName, email, password string) (domain.UserAccount, error)
	LogIn(ctx context.Context, email, password string) (domain.UserAccount, error)
	Current(ctx context.Context) (domain.UserAccount, error)
	SignOut(ctx context.Context) error
}

// FeedLister defines the recent-updates read the handlers depend on.
type FeedLister interface {
	List(ctx context.Context, tripID string) ([]domain.Update, error)
}

// TokenIssuer signs session tokens for sign-up and log-in responses.
type TokenIssuer interface {
	Issue(u domain.UserAccount) (string, error)
}

// Server holds every handler dependency. Methods are in domain-specific
// files but all operate on this struct.
type Server struct {
	trips       TripStorer
	activities  ActivityStorer
	expenses    ExpenseStorer
	invitations InvitationStorer
	guests      GuestStorer
	accounts    AccountStorer
	feed        FeedLister
	tokens      TokenIssuer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripStorer,
	activities ActivityStorer,
	expenses ExpenseStorer,
	invitations InvitationStorer,
	guests GuestStorer,
	accounts AccountStorer,
	feed FeedLister,
	tokens TokenIssuer,
) *Server {
	return &Server{
		trips:       trips,
		activities:  activities,
		expenses:    expenses,
		invitations: invitations,
		guests:      guests,
		accounts:    accounts,
		feed:        feed,
		tokens:      tokens,
	}
}

// Routes mounts every API endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.SignUp)
			r.Post("/login", s.LogIn)
			r.Post("/logout", s.LogOut)
			r.Get("/me", s.CurrentUser)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)

				r.Get("/activities", s.ListActivities)
				r.Post("/activities", s.AddActivity)
				r.Delete("/activities/{activityID}", s.DeleteActivity)
				r.Post("/activities/{activityID}/vote", s.VoteActivity)

				r.Get("/expenses", s.ListExpenses)
				r.Post("/expenses", s.AddExpense)
				r.Get("/expenses/summary", s.ExpenseSummary)
				r.Delete("/expenses/{expenseID}", s.DeleteExpense)

				r.Get("/invitations", s.ListInvitations)
				r.Post("/invitations", s.SendInvitation)
				r.Post("/invitations/{inviteID}/accept", s.AcceptInvitation)
				r.Delete("/invitations/{inviteID}", s.RevokeInvitation)

				r.Post("/join", s.JoinAsGuest)
				r.Get("/guest", s.CurrentGuest)

				r.Get("/updates", s.ListUpdates)
			})
		})

		r.Get("/guests/{guestID}/association", s.GuestAssociation)
	})

	return r
}

// actorName resolves the display name credited for a mutation: an explicit
// name in the request body wins, then the signed-in user's token, then the
// stores' own fallback.
func actorName(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if claims, ok := token.ActorFromContext(ctx); ok {
		return claims.FullName
	}
	return ""
}
