package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/handler"
)

type mockFeedLister struct {
	list func(ctx context.Context, tripID string) ([]domain.Update, error)
}

func (m *mockFeedLister) List(ctx context.Context, tripID string) ([]domain.Update, error) {
	return m.list(ctx, tripID)
}

var _ handler.FeedLister = (*mockFeedLister)(nil)

func TestListUpdates_200_withTimeAgo(t *testing.T) {
	feed := &mockFeedLister{
		list: func(_ context.Context, tripID string) ([]domain.Update, error) {
			assert.Equal(t, "trip-abc", tripID)
			return []domain.Update{
				{
					ID:         "id-1",
					Action:     "Sarah Chen suggested Visit Senso-ji Temple",
					Type:       domain.UpdateActivity,
					RecordedAt: time.Now().Add(-2 * time.Hour),
				},
			}, nil
		},
	}
	srv := handler.NewServer(nil, nil, nil, nil, nil, nil, feed, staticTokens{})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/trip-abc/updates", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Action  string `json:"action"`
		Type    string `json:"type"`
		TimeAgo string `json:"timeAgo"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sarah Chen suggested Visit Senso-ji Temple", resp[0].Action)
	assert.Equal(t, "2 hours ago", resp[0].TimeAgo)
}

func TestListUpdates_emptyFeed(t *testing.T) {
	feed := &mockFeedLister{
		list: func(_ context.Context, _ string) ([]domain.Update, error) { return nil, nil },
	}
	srv := handler.NewServer(nil, nil, nil, nil, nil, nil, feed, staticTokens{})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/trip-abc/updates", nil)
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
