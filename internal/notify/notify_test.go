package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/notify"
)

func TestLog_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := notify.NewLog(logger).Send(context.Background(), notify.Invitation{
		To:         "friend@example.com",
		Subject:    "You're invited to join Tokyo Adventure trip!",
		InviteLink: "https://tripsync.example.com/join-trip/trip-abc",
		Message:    "Join us on our upcoming trip to Tokyo, Japan. Click the link to accept the invitation.",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "email invitation sent")
	assert.Contains(t, buf.String(), "friend@example.com")
}

func TestLog_nilLoggerFallsBack(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = notify.NewLog(nil).Send(context.Background(), notify.Invitation{To: "friend@example.com"})
	})
}
