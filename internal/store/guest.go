package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/remote"
)

// GuestStore manages guest sessions — accountless participants who join a
// trip through an invite link. Each join writes three records: the shared
// current-guest record, the per-trip session, and the guest→trip
// association.
type GuestStore struct {
	mu    sync.Mutex
	kv    kv.Store
	ids   identity.Generator
	log   *slog.Logger
	trips TripGetter
	sim   *remote.Simulator
	now   func() time.Time
}

// NewGuestStore constructs a GuestStore over the given kv backend.
func NewGuestStore(kvs kv.Store, ids identity.Generator, trips TripGetter, sim *remote.Simulator, log *slog.Logger) *GuestStore {
	return &GuestStore{kv: kvs, ids: ids, log: log, trips: trips, sim: sim, now: time.Now}
}

// Join creates a guest session on the trip under the given display name.
// The guest gets the fixed permission set; joining twice creates two
// independent sessions, the newer one becoming the trip's current guest.
func (s *GuestStore) Join(ctx context.Context, tripID, name string) (domain.GuestSession, error) {
	if _, err := s.trips.Get(ctx, tripID); err != nil {
		return domain.GuestSession{}, fmt.Errorf("store.GuestStore.Join: %w", err)
	}
	if msg := domain.ValidateGuestName(name); msg != "" {
		return domain.GuestSession{}, domain.FieldErrors{"name": msg}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.Wait()

	now := s.now().UTC()
	session := domain.GuestSession{
		ID:          s.ids.NewGuestID(),
		Name:        strings.TrimSpace(name),
		TripID:      tripID,
		JoinedAt:    now,
		IsGuest:     true,
		Permissions: domain.DefaultGuestPermissions(),
	}
	association := domain.GuestAssociation{
		GuestID:      session.ID,
		TripID:       tripID,
		AssociatedAt: now,
		Status:       domain.AssociationActive,
	}

	writeThrough(ctx, s.kv, s.log, kv.GuestDataKey, session)
	writeThrough(ctx, s.kv, s.log, kv.GuestKey(tripID), session)
	writeThrough(ctx, s.kv, s.log, kv.AssociationKey(session.ID), association)
	return session, nil
}

// CurrentForTrip returns the trip's most recent guest session.
func (s *GuestStore) CurrentForTrip(ctx context.Context, tripID string) (domain.GuestSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := kv.GetJSON[domain.GuestSession](ctx, s.kv, kv.GuestKey(tripID))
	if err != nil {
		if errors.Is(err, kv.ErrNoRecord) {
			return domain.GuestSession{}, fmt.Errorf("store.GuestStore.CurrentForTrip: %w", domain.ErrNotFound)
		}
		return domain.GuestSession{}, fmt.Errorf("store.GuestStore.CurrentForTrip: %w", err)
	}
	return session, nil
}

// Association returns the guest→trip link for a guest id.
func (s *GuestStore) Association(ctx context.Context, guestID string) (domain.GuestAssociation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assoc, err := kv.GetJSON[domain.GuestAssociation](ctx, s.kv, kv.AssociationKey(guestID))
	if err != nil {
		if errors.Is(err, kv.ErrNoRecord) {
			return domain.GuestAssociation{}, fmt.Errorf("store.GuestStore.Association: %w", domain.ErrNotFound)
		}
		return domain.GuestAssociation{}, fmt.Errorf("store.GuestStore.Association: %w", err)
	}
	return assoc, nil
}
