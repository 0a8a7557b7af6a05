package domain

import "time"

// GuestPermissions is the capability set granted to a guest session.
// The set is fixed: guests can look at the trip and contribute suggestions
// and votes, but can never invite others or manage the trip.
type GuestPermissions struct {
	CanView    bool `json:"canView"`
	CanSuggest bool `json:"canSuggest"`
	CanVote    bool `json:"canVote"`
	CanInvite  bool `json:"canInvite"`
	CanManage  bool `json:"canManage"`
}

// DefaultGuestPermissions returns the fixed guest capability set.
func DefaultGuestPermissions() GuestPermissions {
	return GuestPermissions{
		CanView:    true,
		CanSuggest: true,
		CanVote:    true,
		CanInvite:  false,
		CanManage:  false,
	}
}

// GuestSession is created once per join action and persisted for the
// lifetime of the local store. Guests are identified by a generated id with
// a "guest_" prefix; they have no account and no credentials.
type GuestSession struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	TripID      string           `json:"tripId"`
	JoinedAt    time.Time        `json:"joinedAt"`
	IsGuest     bool             `json:"isGuest"`
	Permissions GuestPermissions `json:"permissions"`
}

// GuestAssociation links a guest session to the trip it joined.
// Persisted under its own key so the association survives independently of
// the session record.
type GuestAssociation struct {
	GuestID      string    `json:"guestId"`
	TripID       string    `json:"tripId"`
	AssociatedAt time.Time `json:"associatedAt"`
	Status       string    `json:"status"`
}

// AssociationActive is the only association status currently issued.
const AssociationActive = "active"
