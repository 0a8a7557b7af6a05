// Package notify is the outbound notification port. Sending an invitation
// produces a structured payload; where that payload goes is an
// implementation detail behind the Notifier interface. The default
// implementation logs the payload instead of performing network I/O —
// deliberately, since no mail provider is wired — but callers must not
// assume that: a real sender can be substituted without touching them.
package notify

import (
	"context"
	"log/slog"
)

// Invitation is the payload of an invitation email.
type Invitation struct {
	To         string
	Subject    string
	InviteLink string
	Message    string
}

// Notifier delivers invitation notifications.
type Notifier interface {
	Send(ctx context.Context, inv Invitation) error
}

// Log is a Notifier that writes the payload as one structured log line.
type Log struct {
	log *slog.Logger
}

// NewLog returns a logging Notifier. A nil logger falls back to slog.Default.
func NewLog(log *slog.Logger) *Log {
	if log == nil {
		log = slog.Default()
	}
	return &Log{log: log}
}

// Send logs the invitation payload. It never fails.
func (l *Log) Send(ctx context.Context, inv Invitation) error {
	l.log.InfoContext(ctx, "email invitation sent",
		"to", inv.To,
		"subject", inv.Subject,
		"inviteLink", inv.InviteLink,
		"message", inv.Message,
	)
	return nil
}
