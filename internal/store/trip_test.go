package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/store"
)

// ---- Create ----------------------------------------------------------------

func TestTripStore_Create(t *testing.T) {
	trips, _ := newTripStore(t)

	trip, err := trips.Create(context.Background(), tripDraft(),
		domain.Participant{ID: "u1", Name: "Sarah Chen"})

	require.NoError(t, err)
	assert.Equal(t, "trip-id-1", trip.ID)
	assert.Equal(t, "Tokyo Adventure", trip.Name)
	assert.Equal(t, "Tokyo, Japan", trip.Destination)
	assert.Equal(t, "u1", trip.CreatorID)
	require.Len(t, trip.Participants, 1)
	assert.Equal(t, domain.RoleCreator, trip.Participants[0].Role)
	assert.False(t, trip.CreatedAt.IsZero())
}

func TestTripStore_Create_prependsNewestFirst(t *testing.T) {
	trips, _ := newTripStore(t)
	ctx := context.Background()

	first := mustCreateTrip(t, trips)
	second := mustCreateTrip(t, trips)

	all, err := trips.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestTripStore_Create_validationBlocksStateChange(t *testing.T) {
	trips, mem := newTripStore(t)
	ctx := context.Background()

	draft := tripDraft()
	draft.EndDate = draft.StartDate // equal dates are rejected

	_, err := trips.Create(ctx, draft, domain.Participant{ID: "u1", Name: "Sarah Chen"})

	require.ErrorIs(t, err, domain.ErrValidation)
	var fields domain.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "End date must be after start date", fields["endDate"])

	// Nothing was mutated or persisted.
	all, listErr := trips.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
	_, getErr := mem.Get(ctx, kv.TripsKey)
	assert.ErrorIs(t, getErr, kv.ErrNoRecord)
}

func TestTripStore_Create_writesThrough(t *testing.T) {
	trips, mem := newTripStore(t)
	ctx := context.Background()

	trip := mustCreateTrip(t, trips)

	persisted, err := kv.GetJSON[[]domain.Trip](ctx, mem, kv.TripsKey)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, trip.ID, persisted[0].ID)
}

// A failing write-through is logged and swallowed: the in-memory mutation
// stands and the caller sees success.
func TestTripStore_Create_failOpenOnWriteFailure(t *testing.T) {
	trips := store.NewTripStore(failingKV{}, &seqIDs{}, discardLogger())
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripDraft(), domain.Participant{ID: "u1", Name: "Sarah Chen"})

	require.NoError(t, err)
	got, err := trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
}

// ---- Load ------------------------------------------------------------------

func TestTripStore_loadsPersistedCollection(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()

	seeded := []domain.Trip{{ID: "trip-seeded", Name: "Old Trip"}}
	require.NoError(t, kv.PutJSON(ctx, mem, kv.TripsKey, seeded))

	trips := store.NewTripStore(mem, &seqIDs{}, discardLogger())
	got, err := trips.Get(ctx, "trip-seeded")

	require.NoError(t, err)
	assert.Equal(t, "Old Trip", got.Name)
}

func TestTripStore_corruptRecordLoadsAsEmpty(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Put(ctx, kv.TripsKey, []byte("{broken")))

	trips := store.NewTripStore(mem, &seqIDs{}, discardLogger())

	all, err := trips.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// ---- Get / List ------------------------------------------------------------

func TestTripStore_Get_notFound(t *testing.T) {
	trips, _ := newTripStore(t)

	_, err := trips.Get(context.Background(), "trip-nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripStore_ListPaged(t *testing.T) {
	trips, _ := newTripStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateTrip(t, trips)
	}

	page, total, err := trips.ListPaged(ctx, domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	// A page past the end is empty, not an error.
	page, total, err = trips.ListPaged(ctx, domain.PaginationParams{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)
}

// ---- Update ----------------------------------------------------------------

func TestTripStore_Update(t *testing.T) {
	trips, _ := newTripStore(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, trips)

	draft := tripDraft()
	draft.Name = "Kyoto Getaway"
	draft.Destination = "Kyoto, Japan"

	updated, err := trips.Update(ctx, trip.ID, draft)

	require.NoError(t, err)
	assert.Equal(t, "Kyoto Getaway", updated.Name)
	assert.Equal(t, "Kyoto, Japan", updated.Destination)
	// Non-editable fields survive.
	assert.Equal(t, trip.CreatorID, updated.CreatorID)
	assert.Equal(t, trip.Participants, updated.Participants)
	assert.True(t, trip.CreatedAt.Equal(updated.CreatedAt))
}

func TestTripStore_Update_rejectsInvalidDraftWithoutChanges(t *testing.T) {
	trips, _ := newTripStore(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, trips)

	draft := tripDraft()
	draft.Name = "ab"

	_, err := trips.Update(ctx, trip.ID, draft)
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Adventure", got.Name)
}

func TestTripStore_Update_notFound(t *testing.T) {
	trips, _ := newTripStore(t)

	_, err := trips.Update(context.Background(), "trip-nope", tripDraft())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Remove ----------------------------------------------------------------

func TestTripStore_Remove(t *testing.T) {
	trips, _ := newTripStore(t)
	ctx := context.Background()
	trip := mustCreateTrip(t, trips)

	require.NoError(t, trips.Remove(ctx, trip.ID))

	_, err := trips.Get(ctx, trip.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, trips.Remove(ctx, trip.ID), domain.ErrNotFound)
}

// Round-trip: everything Create persisted comes back identical through a
// second store over the same backend.
func TestTripStore_roundTripThroughNewStore(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()

	first := store.NewTripStore(mem, &seqIDs{}, discardLogger())
	trip, err := first.Create(ctx, tripDraft(), domain.Participant{ID: "u1", Name: "Sarah Chen"})
	require.NoError(t, err)

	second := store.NewTripStore(mem, &seqIDs{}, discardLogger())
	got, err := second.Get(ctx, trip.ID)
	require.NoError(t, err)

	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.Participants, got.Participants)
	assert.True(t, trip.StartDate.Time.Equal(got.StartDate.Time))
	assert.True(t, trip.EndDate.Time.Equal(got.EndDate.Time))
	assert.True(t, trip.CreatedAt.Equal(got.CreatedAt))
}

func TestTripStore_createdAtIsUTC(t *testing.T) {
	trips, _ := newTripStore(t)
	trip := mustCreateTrip(t, trips)
	assert.Equal(t, time.UTC, trip.CreatedAt.Location())
}
