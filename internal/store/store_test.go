package store_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/remote"
	"github.com/tripsync/backend/internal/store"
)

// seqIDs issues a deterministic id sequence so assertions can name ids.
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func (s *seqIDs) NewGuestID() string {
	s.n++
	return fmt.Sprintf("guest_id-%d", s.n)
}

var _ identity.Generator = (*seqIDs)(nil)

// failingKV accepts reads but fails every write, for fail-open assertions.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, kv.ErrNoRecord }
func (failingKV) Put(context.Context, string, []byte) error   { return errors.New("disk full") }
func (failingKV) Delete(context.Context, string) error        { return nil }

var _ kv.Store = failingKV{}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) types.Date {
	return types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func tripDraft() domain.TripDraft {
	return domain.TripDraft{
		Name:        "Tokyo Adventure",
		Destination: "Tokyo, Japan",
		StartDate:   date(2025, time.June, 1),
		EndDate:     date(2025, time.June, 15),
	}
}

// newTripStore wires a TripStore over a fresh in-memory kv.
func newTripStore(t *testing.T) (*store.TripStore, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	return store.NewTripStore(mem, &seqIDs{}, discardLogger()), mem
}

// mustCreateTrip creates a valid trip and fails the test if it cannot.
func mustCreateTrip(t *testing.T, trips *store.TripStore) domain.Trip {
	t.Helper()
	trip, err := trips.Create(context.Background(), tripDraft(),
		domain.Participant{ID: "u1", Name: "Sarah Chen"})
	require.NoError(t, err)
	return trip
}

func noLatency() *remote.Simulator {
	return remote.NewSimulator(0)
}
