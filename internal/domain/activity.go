package domain

import "github.com/oapi-codegen/runtime/types"

// ActivityStatus is the confirmation state of an itinerary suggestion.
type ActivityStatus string

const (
	ActivityPending   ActivityStatus = "pending"
	ActivityConfirmed ActivityStatus = "confirmed"
)

// Vote directions accepted by ActivityStore.Vote.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Votes holds the running tallies for an activity. Counts only ever grow
// within a session — votes are additive, not retractable.
type Votes struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// Activity is a suggested itinerary entry for a trip.
// Time is a free-form display string (e.g. "10:00 AM"); Date is the calendar
// day the activity is planned for.
type Activity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Time        string         `json:"time"`
	Date        types.Date     `json:"date"`
	Location    string         `json:"location"`
	Votes       Votes          `json:"votes"`
	SuggestedBy string         `json:"suggestedBy"`
	Status      ActivityStatus `json:"status"`
}

// ActivityDraft carries the user-supplied fields for a new suggestion.
// Votes, SuggestedBy and Status are assigned by the store.
type ActivityDraft struct {
	Name     string     `json:"name"`
	Time     string     `json:"time"`
	Date     types.Date `json:"date"`
	Location string     `json:"location"`
}
