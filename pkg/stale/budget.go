// Package stale implements the staleness policy: the per-item decision
// engine and the budget-bounded run loop that drives it over the tracker's
// open-item listing.
package stale

// Budget tracks how many tracker-API operations a run may still perform.
// Every page fetch, comment listing, and mutating call costs one unit; the
// run loop stops dispatching new evaluations once the budget is exhausted to
// stay clear of the tracker's rate limit.
type Budget struct {
	remaining int
}

// NewBudget creates a budget of the given number of operations.
func NewBudget(operations int) *Budget {
	return &Budget{remaining: operations}
}

// Consume deducts n units from the budget.
func (b *Budget) Consume(n int) {
	b.remaining -= n
}

// Exhausted reports whether the budget has reached zero or below.
func (b *Budget) Exhausted() bool {
	return b.remaining <= 0
}

// Remaining returns the number of units left. It can be negative when the
// last evaluated item cost more than what remained.
func (b *Budget) Remaining() int {
	return b.remaining
}
