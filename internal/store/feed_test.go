package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/store"
)

func TestFeedStore_Record_prependsNewestFirst(t *testing.T) {
	feed := store.NewFeedStore(kv.NewMemory(), &seqIDs{}, discardLogger())
	ctx := context.Background()

	feed.Record(ctx, "trip-1", "Sarah suggested Temple Visit", domain.UpdateActivity)
	feed.Record(ctx, "trip-1", "Mike liked an activity", domain.UpdateVote)

	got, err := feed.List(ctx, "trip-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mike liked an activity", got[0].Action)
	assert.Equal(t, domain.UpdateVote, got[0].Type)
	assert.Equal(t, "Sarah suggested Temple Visit", got[1].Action)
}

// The feed is bounded: the sixth entry pushes the oldest one out.
func TestFeedStore_Record_truncatesToBound(t *testing.T) {
	feed := store.NewFeedStore(kv.NewMemory(), &seqIDs{}, discardLogger())
	ctx := context.Background()

	for i := 1; i <= domain.MaxRecentUpdates+2; i++ {
		feed.Record(ctx, "trip-1", fmt.Sprintf("entry %d", i), domain.UpdateActivity)
	}

	got, err := feed.List(ctx, "trip-1")
	require.NoError(t, err)
	require.Len(t, got, domain.MaxRecentUpdates)
	assert.Equal(t, "entry 7", got[0].Action)
	assert.Equal(t, "entry 3", got[len(got)-1].Action)
}

func TestFeedStore_feedsAreIsolatedPerTrip(t *testing.T) {
	feed := store.NewFeedStore(kv.NewMemory(), &seqIDs{}, discardLogger())
	ctx := context.Background()

	feed.Record(ctx, "trip-1", "a", domain.UpdateActivity)
	feed.Record(ctx, "trip-2", "b", domain.UpdateExpense)

	one, err := feed.List(ctx, "trip-1")
	require.NoError(t, err)
	assert.Len(t, one, 1)

	two, err := feed.List(ctx, "trip-2")
	require.NoError(t, err)
	assert.Len(t, two, 1)
}

func TestFeedStore_persistsUnderTripKey(t *testing.T) {
	mem := kv.NewMemory()
	feed := store.NewFeedStore(mem, &seqIDs{}, discardLogger())
	ctx := context.Background()

	feed.Record(ctx, "trip-1", "a", domain.UpdateActivity)

	persisted, err := kv.GetJSON[[]domain.Update](ctx, mem, kv.UpdatesKey("trip-1"))
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

// Recording never fails, even when the backend rejects the write.
func TestFeedStore_Record_failOpen(t *testing.T) {
	feed := store.NewFeedStore(failingKV{}, &seqIDs{}, discardLogger())
	ctx := context.Background()

	feed.Record(ctx, "trip-1", "a", domain.UpdateActivity)

	got, err := feed.List(ctx, "trip-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
