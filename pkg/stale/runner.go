package stale

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/tracker"
)

// ClosedItem records one item closed during a run, in close order. The
// sequence is consumed by the report formatter and discarded at run end.
type ClosedItem struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Result is the outcome of one sweep.
type Result struct {
	// Closed lists the items closed during the run, in close order.
	Closed []ClosedItem
	// RemainingOps is the budget left when the run ended. It can be
	// negative when the last item cost more than what remained.
	RemainingOps int
	// EarlyExit reports whether the run stopped on budget exhaustion
	// instead of reaching the end of the listing.
	EarlyExit bool
}

// Runner drives pagination and budget enforcement over the open-item
// listing.
type Runner struct {
	tracker    tracker.Tracker
	engine     *Engine
	logger     logger.Logger
	operations int
}

// NewRunnerParams contains parameters for creating a new Runner.
type NewRunnerParams struct {
	Tracker    tracker.Tracker
	Engine     *Engine
	Logger     logger.Logger
	Operations int
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) *Runner {
	return &Runner{
		tracker:    params.Tracker,
		engine:     params.Engine,
		logger:     params.Logger,
		operations: params.Operations,
	}
}

// Run sweeps all open items page by page until the listing is exhausted or
// the operation budget runs out. Items are processed strictly in listing
// order and pages in increasing page order; the budget is a single
// sequentially decremented counter, so no processing happens concurrently.
// A failed tracker call aborts the run; mutations already applied stay in
// place.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	budget := NewBudget(r.operations)
	result := &Result{}

	for page := 1; ; page++ {
		items, err := r.tracker.ListOpenItems(ctx, page)
		budget.Consume(1)
		if err != nil {
			return nil, fmt.Errorf("failed to list open items (page %d): %w", page, err)
		}
		if len(items) == 0 {
			break
		}
		if budget.Exhausted() {
			r.logger.Warnf("performed %d operations, exiting to avoid rate limit", r.operations)
			result.EarlyExit = true
			break
		}

		stop := false
		for _, item := range items {
			r.logger.Debugf("found %s: %q (#%d) - last updated: %s",
				item.Kind, item.Title, item.Number, item.UpdatedAt.Format(time.RFC3339))

			action, err := r.engine.Process(ctx, item, budget)
			if err != nil {
				return nil, err
			}
			if action == ActionClose {
				result.Closed = append(result.Closed, ClosedItem{URL: item.URL, Title: item.Title})
			}

			if budget.Exhausted() {
				r.logger.Warnf("performed %d operations, exiting to avoid rate limit", r.operations)
				result.EarlyExit = true
				stop = true
				break
			}
		}
		if stop {
			break
		}
	}

	result.RemainingOps = budget.Remaining()
	return result, nil
}
