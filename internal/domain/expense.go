package domain

// Expense is a shared cost recorded against a trip.
//
// SplitBetween is the trip's participant count at the moment the expense was
// recorded and is never updated when participants later join or leave — the
// split is a snapshot, not a live view.
type Expense struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	PaidBy       string  `json:"paidBy"`
	SplitBetween int     `json:"splitBetween"`
	Category     string  `json:"category"`
}

// ExpenseDraft carries the user-supplied fields for a new expense.
// PaidBy and SplitBetween are assigned by the store.
type ExpenseDraft struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// PerShare returns the per-person share of this expense.
// Guards division by zero even though SplitBetween is ≥1 by construction.
func (e Expense) PerShare() float64 {
	if e.SplitBetween <= 0 {
		return 0
	}
	return e.Amount / float64(e.SplitBetween)
}

// ExpenseSummary is the derived aggregate view over a trip's expenses.
// Values are computed on demand and never stored.
type ExpenseSummary struct {
	Total     float64 `json:"total"`
	PerPerson float64 `json:"perPerson"`
	Count     int     `json:"count"`
}
