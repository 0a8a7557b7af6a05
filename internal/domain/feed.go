package domain

import (
	"fmt"
	"time"
)

// MaxRecentUpdates bounds the per-trip recent-updates feed. New entries are
// prepended and anything beyond the bound is silently dropped.
const MaxRecentUpdates = 5

// Update kinds, used by the client to pick an icon.
const (
	UpdateActivity = "activity"
	UpdateVote     = "vote"
	UpdateExpense  = "expense"
)

// Update is one human-readable entry in a trip's recent-updates feed,
// e.g. "Sarah suggested Senso-ji Temple Visit".
// RecordedAt is absolute; the display-friendly relative form ("2 hours ago")
// is derived at read time, never stored.
type Update struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Type       string    `json:"type"`
	RecordedAt time.Time `json:"recordedAt"`
}

// RelativeTime renders the elapsed time since t as the coarse human-readable
// strings the feed shows: "just now", "5 minutes ago", "2 hours ago",
// "1 day ago".
func RelativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
