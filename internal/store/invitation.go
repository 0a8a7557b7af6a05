package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oapi-codegen/runtime/types"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/notify"
	"github.com/tripsync/backend/internal/remote"
)

// InvitationStore holds the per-trip invitations and drives the outbound
// notification. Invitations are kept newest first: sending prepends.
type InvitationStore struct {
	mu       sync.Mutex
	kv       kv.Store
	ids      identity.Generator
	log      *slog.Logger
	trips    TripGetter
	notifier notify.Notifier
	sim      *remote.Simulator
	baseURL  string
	now      func() time.Time
	items    map[string][]domain.Invitation
	loaded   map[string]bool
}

// NewInvitationStore constructs an InvitationStore. baseURL is the public
// origin used to build invite links, e.g. "https://tripsync.example.com".
func NewInvitationStore(kvs kv.Store, ids identity.Generator, trips TripGetter, notifier notify.Notifier, sim *remote.Simulator, baseURL string, log *slog.Logger) *InvitationStore {
	return &InvitationStore{
		kv:       kvs,
		ids:      ids,
		log:      log,
		trips:    trips,
		notifier: notifier,
		sim:      sim,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
		items:    make(map[string][]domain.Invitation),
		loaded:   make(map[string]bool),
	}
}

func (s *InvitationStore) load(ctx context.Context, tripID string) {
	if s.loaded[tripID] {
		return
	}
	s.items[tripID] = loadCollection[domain.Invitation](ctx, s.kv, s.log, kv.InvitesKey(tripID))
	s.loaded[tripID] = true
}

// Send invites email to the trip. The address is validated, checked against
// the trip's existing invitations (one per address, regardless of status),
// and the notification payload is handed to the notifier. A notifier failure
// is logged but does not undo the invitation — the record already exists.
func (s *InvitationStore) Send(ctx context.Context, tripID, email, inviter string) (domain.Invitation, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("store.InvitationStore.Send: %w", err)
	}
	if msg := domain.ValidateEmail(email); msg != "" {
		return domain.Invitation{}, domain.FieldErrors{"email": msg}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	for _, inv := range s.items[tripID] {
		if inv.Email == email {
			return domain.Invitation{}, fmt.Errorf("store.InvitationStore.Send: %w",
				domain.ConflictError{Message: "This email has already been invited"})
		}
	}

	s.sim.Wait()

	if inviter == "" {
		inviter = "You"
	}

	invitation := domain.Invitation{
		ID:      s.ids.NewID(),
		Email:   email,
		Status:  domain.InvitationPending,
		SentAt:  types.Date{Time: s.now().UTC()},
		Inviter: inviter,
		TripID:  tripID,
	}

	s.items[tripID] = append([]domain.Invitation{invitation}, s.items[tripID]...)
	writeThrough(ctx, s.kv, s.log, kv.InvitesKey(tripID), s.items[tripID])

	payload := notify.Invitation{
		To:         email,
		Subject:    "You're invited to join " + trip.Name + " trip!",
		InviteLink: s.baseURL + "/join-trip/" + tripID,
		Message:    "Join us on our upcoming trip to " + trip.Destination + ". Click the link to accept the invitation.",
	}
	if err := s.notifier.Send(ctx, payload); err != nil {
		s.log.ErrorContext(ctx, "invitation notification failed", "tripId", tripID, "to", email, "error", err)
	}
	return invitation, nil
}

// Accept marks a pending invitation accepted.
func (s *InvitationStore) Accept(ctx context.Context, tripID, invitationID string) (domain.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	items := s.items[tripID]
	for i := range items {
		if items[i].ID != invitationID {
			continue
		}
		items[i].Status = domain.InvitationAccepted
		writeThrough(ctx, s.kv, s.log, kv.InvitesKey(tripID), items)
		return items[i], nil
	}
	return domain.Invitation{}, fmt.Errorf("store.InvitationStore.Accept: %w", domain.ErrNotFound)
}

// Revoke removes an invitation entirely. The address becomes invitable again.
func (s *InvitationStore) Revoke(ctx context.Context, tripID, invitationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	items := s.items[tripID]
	for i := range items {
		if items[i].ID != invitationID {
			continue
		}
		s.sim.Wait()
		s.items[tripID] = append(items[:i], items[i+1:]...)
		writeThrough(ctx, s.kv, s.log, kv.InvitesKey(tripID), s.items[tripID])
		return nil
	}
	return fmt.Errorf("store.InvitationStore.Revoke: %w", domain.ErrNotFound)
}

// List returns the trip's invitations, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *InvitationStore) List(ctx context.Context, tripID string) ([]domain.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	out := make([]domain.Invitation, len(s.items[tripID]))
	copy(out, s.items[tripID])
	return out, nil
}

// Pending returns only the trip's pending invitations, newest first.
func (s *InvitationStore) Pending(ctx context.Context, tripID string) ([]domain.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	out := make([]domain.Invitation, 0, len(s.items[tripID]))
	for _, inv := range s.items[tripID] {
		if inv.Status == domain.InvitationPending {
			out = append(out, inv)
		}
	}
	return out, nil
}
