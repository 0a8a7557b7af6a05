// Package identity issues the unique identifiers used by every entity store.
// The contract is minimal: each value returned is unique among all ids ever
// issued in this process. Pseudo-unique timestamp+random schemes are not good
// enough here — collisions, however unlikely, corrupt keyed records.
package identity

import "github.com/google/uuid"

// Generator issues process-unique identifiers.
// Stores depend on this interface, not the UUID implementation, so tests can
// inject a deterministic sequence.
type Generator interface {
	// NewID returns a fresh unique id.
	NewID() string

	// NewGuestID returns a fresh unique guest id. Guest ids keep the
	// "guest_" prefix because persisted key names embed them.
	NewGuestID() string
}

// UUID is the production Generator, backed by random (v4) UUIDs.
type UUID struct{}

// NewUUID returns the production id generator.
func NewUUID() UUID { return UUID{} }

// NewID returns a random UUID string.
func (UUID) NewID() string { return uuid.NewString() }

// NewGuestID returns "guest_" followed by a random UUID.
func (UUID) NewGuestID() string { return "guest_" + uuid.NewString() }
