package kv

// Record key names. These are load-bearing: existing stores were written
// with these exact names (mixed casing included), so changing one orphans
// previously saved data. New per-trip collections follow the same
// "tripSync_<kind>_<id>" convention.

const (
	// TripsKey holds the full trip collection.
	TripsKey = "tripsync_trips"

	// UsersKey holds every registered UserAccount.
	UsersKey = "tripSyncUsers"

	// CurrentUserKey holds the UserAccount of the active session.
	CurrentUserKey = "tripSyncCurrentUser"

	// GuestDataKey holds the most recently created GuestSession.
	GuestDataKey = "tripSyncGuestData"
)

// GuestKey holds the GuestSession for one trip, keyed by trip id.
func GuestKey(tripID string) string { return "tripSync_guest_" + tripID }

// AssociationKey holds the guest→trip association, keyed by guest id.
func AssociationKey(guestID string) string { return "tripSync_association_" + guestID }

// ActivitiesKey holds a trip's activity collection.
func ActivitiesKey(tripID string) string { return "tripSync_activities_" + tripID }

// ExpensesKey holds a trip's expense collection.
func ExpensesKey(tripID string) string { return "tripSync_expenses_" + tripID }

// InvitesKey holds a trip's invitation collection.
func InvitesKey(tripID string) string { return "tripSync_invites_" + tripID }

// UpdatesKey holds a trip's recent-updates feed.
func UpdatesKey(tripID string) string { return "tripSync_updates_" + tripID }
