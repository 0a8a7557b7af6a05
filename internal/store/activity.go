package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
)

// ActivityStore holds the per-trip itinerary suggestions and their vote
// tallies. Activities are kept oldest first: adding appends.
type ActivityStore struct {
	mu     sync.Mutex
	kv     kv.Store
	ids    identity.Generator
	log    *slog.Logger
	trips  TripGetter
	feed   Recorder
	items  map[string][]domain.Activity
	loaded map[string]bool
}

// NewActivityStore constructs an ActivityStore over the given kv backend.
func NewActivityStore(kvs kv.Store, ids identity.Generator, trips TripGetter, feed Recorder, log *slog.Logger) *ActivityStore {
	return &ActivityStore{
		kv:     kvs,
		ids:    ids,
		log:    log,
		trips:  trips,
		feed:   feed,
		items:  make(map[string][]domain.Activity),
		loaded: make(map[string]bool),
	}
}

func (s *ActivityStore) load(ctx context.Context, tripID string) {
	if s.loaded[tripID] {
		return
	}
	s.items[tripID] = loadCollection[domain.Activity](ctx, s.kv, s.log, kv.ActivitiesKey(tripID))
	s.loaded[tripID] = true
}

// Add validates the draft and appends a new pending suggestion for the trip,
// credited to actor. The parent trip must exist.
func (s *ActivityStore) Add(ctx context.Context, tripID string, draft domain.ActivityDraft, actor string) (domain.Activity, error) {
	if _, err := s.trips.Get(ctx, tripID); err != nil {
		return domain.Activity{}, fmt.Errorf("store.ActivityStore.Add: %w", err)
	}
	if err := domain.ValidateActivityDraft(draft).OrNil(); err != nil {
		return domain.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	if actor == "" {
		actor = "You"
	}

	activity := domain.Activity{
		ID:          s.ids.NewID(),
		Name:        strings.TrimSpace(draft.Name),
		Time:        strings.TrimSpace(draft.Time),
		Date:        draft.Date,
		Location:    strings.TrimSpace(draft.Location),
		Votes:       domain.Votes{},
		SuggestedBy: actor,
		Status:      domain.ActivityPending,
	}

	s.items[tripID] = append(s.items[tripID], activity)
	writeThrough(ctx, s.kv, s.log, kv.ActivitiesKey(tripID), s.items[tripID])

	s.feed.Record(ctx, tripID, actor+" suggested "+activity.Name, domain.UpdateActivity)
	return activity, nil
}

// Vote increments the up or down tally of an activity. Votes are additive:
// there is no per-voter bookkeeping, so the same caller can vote repeatedly
// and each call counts.
func (s *ActivityStore) Vote(ctx context.Context, tripID, activityID, direction, actor string) (domain.Activity, error) {
	if direction != domain.VoteUp && direction != domain.VoteDown {
		return domain.Activity{}, domain.FieldErrors{"direction": "Vote direction must be \"up\" or \"down\""}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	items := s.items[tripID]
	for i := range items {
		if items[i].ID != activityID {
			continue
		}
		if direction == domain.VoteUp {
			items[i].Votes.Up++
		} else {
			items[i].Votes.Down++
		}
		writeThrough(ctx, s.kv, s.log, kv.ActivitiesKey(tripID), items)

		if actor == "" {
			actor = "Someone"
		}
		verb := "liked"
		if direction == domain.VoteDown {
			verb = "disliked"
		}
		s.feed.Record(ctx, tripID, actor+" "+verb+" an activity", domain.UpdateVote)
		return items[i], nil
	}
	return domain.Activity{}, fmt.Errorf("store.ActivityStore.Vote: %w", domain.ErrNotFound)
}

// List returns the trip's activities in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityStore) List(ctx context.Context, tripID string) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	out := make([]domain.Activity, len(s.items[tripID]))
	copy(out, s.items[tripID])
	return out, nil
}

// Remove deletes one activity from the trip.
func (s *ActivityStore) Remove(ctx context.Context, tripID, activityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	items := s.items[tripID]
	for i := range items {
		if items[i].ID != activityID {
			continue
		}
		s.items[tripID] = append(items[:i], items[i+1:]...)
		writeThrough(ctx, s.kv, s.log, kv.ActivitiesKey(tripID), s.items[tripID])
		return nil
	}
	return fmt.Errorf("store.ActivityStore.Remove: %w", domain.ErrNotFound)
}
