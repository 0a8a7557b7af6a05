package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/store"
)

func activityDraft() domain.ActivityDraft {
	return domain.ActivityDraft{
		Name:     "Senso-ji Temple Visit",
		Time:     "10:00 AM",
		Location: "Asakusa",
	}
}

// newActivityFixture wires an ActivityStore plus its parent trip and feed
// over one shared in-memory kv.
func newActivityFixture(t *testing.T) (*store.ActivityStore, *store.FeedStore, domain.Trip, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	log := discardLogger()
	trips := store.NewTripStore(mem, &seqIDs{}, log)
	feed := store.NewFeedStore(mem, &seqIDs{}, log)
	activities := store.NewActivityStore(mem, &seqIDs{}, trips, feed, log)
	trip := mustCreateTrip(t, trips)
	return activities, feed, trip, mem
}

// ---- Add -------------------------------------------------------------------

func TestActivityStore_Add(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)

	activity, err := activities.Add(context.Background(), trip.ID, activityDraft(), "Sarah Chen")

	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, "Senso-ji Temple Visit", activity.Name)
	assert.Equal(t, domain.ActivityPending, activity.Status)
	assert.Equal(t, "Sarah Chen", activity.SuggestedBy)
	assert.Zero(t, activity.Votes.Up)
	assert.Zero(t, activity.Votes.Down)
}

func TestActivityStore_Add_parentTripMustExist(t *testing.T) {
	activities, _, _, _ := newActivityFixture(t)

	_, err := activities.Add(context.Background(), "trip-nope", activityDraft(), "Sarah Chen")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityStore_Add_validationBlocksStateChange(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	_, err := activities.Add(ctx, trip.ID, domain.ActivityDraft{Name: "X"}, "Sarah Chen")

	require.ErrorIs(t, err, domain.ErrValidation)
	got, listErr := activities.List(ctx, trip.ID)
	require.NoError(t, listErr)
	assert.Empty(t, got)
}

func TestActivityStore_Add_recordsFeedEntry(t *testing.T) {
	activities, feed, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	_, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	updates, err := feed.List(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "Sarah Chen suggested Senso-ji Temple Visit", updates[0].Action)
	assert.Equal(t, domain.UpdateActivity, updates[0].Type)
}

func TestActivityStore_Add_appendsInOrder(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	first, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)
	draft := activityDraft()
	draft.Name = "Ramen Tour"
	second, err := activities.Add(ctx, trip.ID, draft, "Mike")
	require.NoError(t, err)

	got, err := activities.List(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

// ---- Vote ------------------------------------------------------------------

// Votes are additive with no per-voter bookkeeping: up, down, up lands on
// {up: 2, down: 1}.
func TestActivityStore_Vote_sequence(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	activity, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	_, err = activities.Vote(ctx, trip.ID, activity.ID, domain.VoteUp, "Mike")
	require.NoError(t, err)
	_, err = activities.Vote(ctx, trip.ID, activity.ID, domain.VoteDown, "Mike")
	require.NoError(t, err)
	got, err := activities.Vote(ctx, trip.ID, activity.ID, domain.VoteUp, "Mike")
	require.NoError(t, err)

	assert.Equal(t, domain.Votes{Up: 2, Down: 1}, got.Votes)
}

func TestActivityStore_Vote_invalidDirection(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	activity, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	_, err = activities.Vote(ctx, trip.ID, activity.ID, "sideways", "Mike")

	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := activities.List(ctx, trip.ID)
	require.NoError(t, err)
	assert.Zero(t, got[0].Votes.Up)
}

func TestActivityStore_Vote_notFound(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)

	_, err := activities.Vote(context.Background(), trip.ID, "nope", domain.VoteUp, "Mike")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityStore_Vote_recordsFeedEntry(t *testing.T) {
	activities, feed, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	activity, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	_, err = activities.Vote(ctx, trip.ID, activity.ID, domain.VoteDown, "Mike")
	require.NoError(t, err)

	updates, err := feed.List(ctx, trip.ID)
	require.NoError(t, err)
	require.NotEmpty(t, updates)
	assert.Equal(t, "Mike disliked an activity", updates[0].Action)
	assert.Equal(t, domain.UpdateVote, updates[0].Type)
}

// ---- Remove ----------------------------------------------------------------

func TestActivityStore_Remove(t *testing.T) {
	activities, _, trip, _ := newActivityFixture(t)
	ctx := context.Background()

	activity, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	require.NoError(t, activities.Remove(ctx, trip.ID, activity.ID))

	got, err := activities.List(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, activities.Remove(ctx, trip.ID, activity.ID), domain.ErrNotFound)
}

// ---- Persistence -----------------------------------------------------------

func TestActivityStore_writesThroughPerTripKey(t *testing.T) {
	activities, _, trip, mem := newActivityFixture(t)
	ctx := context.Background()

	_, err := activities.Add(ctx, trip.ID, activityDraft(), "Sarah Chen")
	require.NoError(t, err)

	persisted, err := kv.GetJSON[[]domain.Activity](ctx, mem, kv.ActivitiesKey(trip.ID))
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}
