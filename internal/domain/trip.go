// Package domain contains the core data types for the TripSync backend.
// This package has zero dependencies on other internal packages and is
// imported by every other layer (kv, store, handler).
//
// JSON tags are camelCase and match the persisted record shapes exactly —
// the key-value store round-trips these structs, so renaming a tag is a
// breaking change for existing data.
package domain

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Role classifies a trip participant.
type Role string

const (
	RoleCreator Role = "Creator"
	RoleMember  Role = "Member"
	RoleGuest   Role = "Guest"
)

// Participant is a member of a trip's participant list.
// Exactly one participant per trip has RoleCreator.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Trip is the top-level aggregate; activities, expenses, invitations and the
// recent-updates feed all belong to a trip. StartDate and EndDate are
// calendar dates (no time component); the invariant StartDate < EndDate is
// strict — a zero-length trip is rejected.
type Trip struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Destination  string        `json:"destination"`
	StartDate    types.Date    `json:"startDate"`
	EndDate      types.Date    `json:"endDate"`
	CreatorID    string        `json:"creatorId"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// TripDraft carries the user-editable trip fields through create and update.
type TripDraft struct {
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   types.Date `json:"startDate"`
	EndDate     types.Date `json:"endDate"`
}

// ParticipantCount returns the number of participants.
// Always ≥1 for a trip created through the store (the creator is added on
// creation and never removed).
func (t Trip) ParticipantCount() int {
	return len(t.Participants)
}
