package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
)

// TripStore holds the authoritative trip collection. Trips are kept newest
// first: creating a trip prepends it.
type TripStore struct {
	mu     sync.Mutex
	kv     kv.Store
	ids    identity.Generator
	log    *slog.Logger
	now    func() time.Time
	trips  []domain.Trip
	loaded bool
}

// NewTripStore constructs a TripStore over the given kv backend.
func NewTripStore(kvs kv.Store, ids identity.Generator, log *slog.Logger) *TripStore {
	return &TripStore{kv: kvs, ids: ids, log: log, now: time.Now}
}

// load pulls the persisted collection into memory on first access.
// Missing or corrupt records fall back to an empty collection.
func (s *TripStore) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.trips = loadCollection[domain.Trip](ctx, s.kv, s.log, kv.TripsKey)
	s.loaded = true
}

// Create validates the draft and adds a new trip with creator as its sole
// participant. Returns domain.FieldErrors when validation fails; nothing is
// mutated in that case.
func (s *TripStore) Create(ctx context.Context, draft domain.TripDraft, creator domain.Participant) (domain.Trip, error) {
	if err := domain.ValidateTripDraft(draft).OrNil(); err != nil {
		return domain.Trip{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	creator.Role = domain.RoleCreator
	if creator.ID == "" {
		creator.ID = s.ids.NewID()
	}
	if creator.Name == "" {
		creator.Name = "You"
	}

	trip := domain.Trip{
		ID:           "trip-" + s.ids.NewID(),
		Name:         strings.TrimSpace(draft.Name),
		Destination:  strings.TrimSpace(draft.Destination),
		StartDate:    draft.StartDate,
		EndDate:      draft.EndDate,
		CreatorID:    creator.ID,
		Participants: []domain.Participant{creator},
		CreatedAt:    s.now().UTC(),
	}

	s.trips = append([]domain.Trip{trip}, s.trips...)
	writeThrough(ctx, s.kv, s.log, kv.TripsKey, s.trips)
	return trip, nil
}

// Get returns a single trip by id.
func (s *TripStore) Get(ctx context.Context, id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("store.TripStore.Get: %w", domain.ErrNotFound)
}

// List returns all trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripStore) List(ctx context.Context) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out, nil
}

// ListPaged returns one page of trips and the total count.
func (s *TripStore) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	total := len(s.trips)
	lo := p.Offset()
	if lo > total {
		lo = total
	}
	hi := lo + p.Limit
	if hi > total {
		hi = total
	}

	out := make([]domain.Trip, hi-lo)
	copy(out, s.trips[lo:hi])
	return out, total, nil
}

// Update re-validates the editable fields and merges them into the stored
// trip. Participants, creator and creation time are not editable.
func (s *TripStore) Update(ctx context.Context, id string, draft domain.TripDraft) (domain.Trip, error) {
	if err := domain.ValidateTripDraft(draft).OrNil(); err != nil {
		return domain.Trip{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for i := range s.trips {
		if s.trips[i].ID != id {
			continue
		}
		s.trips[i].Name = strings.TrimSpace(draft.Name)
		s.trips[i].Destination = strings.TrimSpace(draft.Destination)
		s.trips[i].StartDate = draft.StartDate
		s.trips[i].EndDate = draft.EndDate

		writeThrough(ctx, s.kv, s.log, kv.TripsKey, s.trips)
		return s.trips[i], nil
	}
	return domain.Trip{}, fmt.Errorf("store.TripStore.Update: %w", domain.ErrNotFound)
}

// Remove deletes a trip by id. Owned collections (activities, expenses,
// invitations) are left behind under their own keys — there is no cascade.
func (s *TripStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for i := range s.trips {
		if s.trips[i].ID != id {
			continue
		}
		s.trips = append(s.trips[:i], s.trips[i+1:]...)
		writeThrough(ctx, s.kv, s.log, kv.TripsKey, s.trips)
		return nil
	}
	return fmt.Errorf("store.TripStore.Remove: %w", domain.ErrNotFound)
}
