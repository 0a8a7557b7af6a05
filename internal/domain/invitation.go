package domain

import "github.com/oapi-codegen/runtime/types"

// InvitationStatus is the lifecycle state of an invitation.
// There is no "revoked" state — revoking removes the record entirely.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Invitation is an emailed request to join a trip.
// At most one invitation exists per (TripID, Email) pair; a second send for
// the same address is rejected as a duplicate while the first still exists.
type Invitation struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Status  InvitationStatus `json:"status"`
	SentAt  types.Date       `json:"sentAt"`
	Inviter string           `json:"inviter"`
	TripID  string           `json:"tripId"`
}
