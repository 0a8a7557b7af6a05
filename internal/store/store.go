// Package store contains the entity stores — the authoritative in-memory
// collections and the only mutation entry points of the TripSync backend.
// Stores validate inputs, enforce business rules, and write through to the
// kv adapter. No storage details live here — stores depend on kv.Store, not
// on a concrete backend.
//
// Error policy, preserved deliberately and asymmetrically:
//   - validation failures block the mutation entirely (fail closed, no state
//     change);
//   - a failed write-through is logged and reported nowhere else — the
//     in-memory state is the source of truth for the running session, and
//     durability is best effort (fail open).
//
// Changing that asymmetry changes observable behavior: callers would start
// seeing errors for data that is, as far as their session is concerned,
// saved.
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/kv"
)

// loadCollection reads the collection under key, falling back to an empty
// slice when the record is missing or corrupt. A corrupt record is logged
// but never surfaces as an error — a bad snapshot must not brick the store.
func loadCollection[T any](ctx context.Context, s kv.Store, log *slog.Logger, key string) []T {
	items, err := kv.GetJSON[[]T](ctx, s, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNoRecord) {
			log.WarnContext(ctx, "discarding unreadable record", "key", key, "error", err)
		}
		return nil
	}
	return items
}

// writeThrough persists the collection under key. Failures are logged and
// swallowed — see the package comment for why.
func writeThrough(ctx context.Context, s kv.Store, log *slog.Logger, key string, v any) {
	if err := kv.PutJSON(ctx, s, key, v); err != nil {
		log.ErrorContext(ctx, "write-through failed, in-memory state is ahead of durable storage",
			"key", key, "error", err)
	}
}

// TripGetter is the subset of TripStore the per-trip stores depend on, so
// they can be unit-tested without a real TripStore.
type TripGetter interface {
	Get(ctx context.Context, id string) (domain.Trip, error)
}

// Recorder is the recent-updates sink the activity and expense stores feed.
// Recording is fire-and-forget; the feed is never allowed to fail a mutation.
type Recorder interface {
	Record(ctx context.Context, tripID, action, kind string)
}
