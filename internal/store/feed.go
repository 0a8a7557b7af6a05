package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
)

// FeedStore holds each trip's bounded recent-updates feed. Entries are
// prepended and the feed is truncated to domain.MaxRecentUpdates — the
// oldest entry is silently dropped on overflow.
type FeedStore struct {
	mu     sync.Mutex
	kv     kv.Store
	ids    identity.Generator
	log    *slog.Logger
	now    func() time.Time
	feeds  map[string][]domain.Update
	loaded map[string]bool
}

// NewFeedStore constructs a FeedStore over the given kv backend.
func NewFeedStore(kvs kv.Store, ids identity.Generator, log *slog.Logger) *FeedStore {
	return &FeedStore{
		kv:     kvs,
		ids:    ids,
		log:    log,
		now:    time.Now,
		feeds:  make(map[string][]domain.Update),
		loaded: make(map[string]bool),
	}
}

func (s *FeedStore) load(ctx context.Context, tripID string) {
	if s.loaded[tripID] {
		return
	}
	s.feeds[tripID] = loadCollection[domain.Update](ctx, s.kv, s.log, kv.UpdatesKey(tripID))
	s.loaded[tripID] = true
}

// Record prepends a feed entry for the trip. It never fails: the feed is a
// side effect of some other mutation and must not be able to block it.
func (s *FeedStore) Record(ctx context.Context, tripID, action, kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	entry := domain.Update{
		ID:         s.ids.NewID(),
		Action:     action,
		Type:       kind,
		RecordedAt: s.now().UTC(),
	}

	feed := append([]domain.Update{entry}, s.feeds[tripID]...)
	if len(feed) > domain.MaxRecentUpdates {
		feed = feed[:domain.MaxRecentUpdates]
	}
	s.feeds[tripID] = feed

	writeThrough(ctx, s.kv, s.log, kv.UpdatesKey(tripID), feed)
}

// List returns the trip's feed, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FeedStore) List(ctx context.Context, tripID string) ([]domain.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	out := make([]domain.Update, len(s.feeds[tripID]))
	copy(out, s.feeds[tripID])
	return out, nil
}
