package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/tripsync/backend/internal/domain"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
)

// ExpenseStore holds the per-trip shared expenses. Expenses are kept oldest
// first: adding appends.
type ExpenseStore struct {
	mu     sync.Mutex
	kv     kv.Store
	ids    identity.Generator
	log    *slog.Logger
	trips  TripGetter
	feed   Recorder
	items  map[string][]domain.Expense
	loaded map[string]bool
}

// NewExpenseStore constructs an ExpenseStore over the given kv backend.
func NewExpenseStore(kvs kv.Store, ids identity.Generator, trips TripGetter, feed Recorder, log *slog.Logger) *ExpenseStore {
	return &ExpenseStore{
		kv:     kvs,
		ids:    ids,
		log:    log,
		trips:  trips,
		feed:   feed,
		items:  make(map[string][]domain.Expense),
		loaded: make(map[string]bool),
	}
}

func (s *ExpenseStore) load(ctx context.Context, tripID string) {
	if s.loaded[tripID] {
		return
	}
	s.items[tripID] = loadCollection[domain.Expense](ctx, s.kv, s.log, kv.ExpensesKey(tripID))
	s.loaded[tripID] = true
}

// Add validates the draft and appends a new expense paid by actor. The split
// count is frozen at the trip's participant count as of right now — later
// joins or leaves do not rebalance past expenses.
func (s *ExpenseStore) Add(ctx context.Context, tripID string, draft domain.ExpenseDraft, actor string) (domain.Expense, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("store.ExpenseStore.Add: %w", err)
	}
	if err := domain.ValidateExpenseDraft(draft).OrNil(); err != nil {
		return domain.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	if actor == "" {
		actor = "You"
	}

	split := trip.ParticipantCount()
	if split < 1 {
		split = 1
	}

	expense := domain.Expense{
		ID:           s.ids.NewID(),
		Name:         strings.TrimSpace(draft.Name),
		Amount:       draft.Amount,
		PaidBy:       actor,
		SplitBetween: split,
		Category:     strings.TrimSpace(draft.Category),
	}

	s.items[tripID] = append(s.items[tripID], expense)
	writeThrough(ctx, s.kv, s.log, kv.ExpensesKey(tripID), s.items[tripID])

	s.feed.Record(ctx, tripID, actor+" added "+expense.Name+" expense", domain.UpdateExpense)
	return expense, nil
}

// List returns the trip's expenses in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseStore) List(ctx context.Context, tripID string) ([]domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	out := make([]domain.Expense, len(s.items[tripID]))
	copy(out, s.items[tripID])
	return out, nil
}

// Summary computes the derived totals for the trip's expenses. PerPerson is
// the grand total divided by the trip's current participant count — a live
// aggregate, unlike each stored expense's frozen splitBetween.
func (s *ExpenseStore) Summary(ctx context.Context, tripID string) (domain.ExpenseSummary, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return domain.ExpenseSummary{}, fmt.Errorf("store.ExpenseStore.Summary: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	var sum domain.ExpenseSummary
	for _, e := range s.items[tripID] {
		sum.Total += e.Amount
		sum.Count++
	}
	if n := trip.ParticipantCount(); n > 0 {
		sum.PerPerson = sum.Total / float64(n)
	}
	return sum, nil
}

// Remove deletes one expense from the trip.
func (s *ExpenseStore) Remove(ctx context.Context, tripID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx, tripID)

	items := s.items[tripID]
	for i := range items {
		if items[i].ID != expenseID {
			continue
		}
		s.items[tripID] = append(items[:i], items[i+1:]...)
		writeThrough(ctx, s.kv, s.log, kv.ExpensesKey(tripID), s.items[tripID])
		return nil
	}
	return fmt.Errorf("store.ExpenseStore.Remove: %w", domain.ErrNotFound)
}
