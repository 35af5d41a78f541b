package stale

import (
	"context"
	"fmt"

	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/tracker"
)

// Executor performs the state-changing transitions the engine decides on.
// Each method returns the number of budget units actually consumed, so the
// dry-run implementation can report zero while the decision is still logged.
type Executor interface {
	// MarkStale posts the stale message and adds the stale label.
	MarkStale(ctx context.Context, item tracker.Item, message, label string) (int, error)
	// Unstale removes the stale label after qualifying activity.
	Unstale(ctx context.Context, item tracker.Item, label string) (int, error)
	// Close posts the close message and sets the item's state to closed.
	Close(ctx context.Context, item tracker.Item, message string) (int, error)
}

// realExecutor applies transitions through the tracker.
type realExecutor struct {
	tracker tracker.Tracker
	logger  logger.Logger
}

// NewExecutor creates an Executor that performs real tracker mutations.
func NewExecutor(t tracker.Tracker, l logger.Logger) Executor {
	return &realExecutor{tracker: t, logger: l}
}

// MarkStale posts the stale message and adds the stale label (2 units).
func (e *realExecutor) MarkStale(ctx context.Context, item tracker.Item, message, label string) (int, error) {
	e.logger.Debugf("marking %s %q (#%d) as stale", item.Kind, item.Title, item.Number)

	if err := e.tracker.PostComment(ctx, item.Number, message); err != nil {
		return 0, fmt.Errorf("failed to post stale message on #%d: %w", item.Number, err)
	}
	if err := e.tracker.AddLabel(ctx, item.Number, label); err != nil {
		return 1, fmt.Errorf("failed to add label %q on #%d: %w", label, item.Number, err)
	}
	return 2, nil
}

// Unstale removes the stale label (1 unit).
func (e *realExecutor) Unstale(ctx context.Context, item tracker.Item, label string) (int, error) {
	e.logger.Debugf("removing stale label on %s %q (#%d)", item.Kind, item.Title, item.Number)

	if err := e.tracker.RemoveLabel(ctx, item.Number, label); err != nil {
		return 0, fmt.Errorf("failed to remove label %q on #%d: %w", label, item.Number, err)
	}
	return 1, nil
}

// Close posts the close message and closes the item (2 units).
func (e *realExecutor) Close(ctx context.Context, item tracker.Item, message string) (int, error) {
	e.logger.Debugf("closing %s %q (#%d) for being stale", item.Kind, item.Title, item.Number)

	if err := e.tracker.PostComment(ctx, item.Number, message); err != nil {
		return 0, fmt.Errorf("failed to post close message on #%d: %w", item.Number, err)
	}
	if err := e.tracker.Close(ctx, item.Number); err != nil {
		return 1, fmt.Errorf("failed to close #%d: %w", item.Number, err)
	}
	return 2, nil
}

// dryRunExecutor logs the decided transitions without performing them. All
// costs are zero: reads still consume budget elsewhere, mutations do not.
type dryRunExecutor struct {
	logger logger.Logger
}

// NewDryRunExecutor creates an Executor that only logs intended actions.
func NewDryRunExecutor(l logger.Logger) Executor {
	return &dryRunExecutor{logger: l}
}

// MarkStale logs the intended transition.
func (e *dryRunExecutor) MarkStale(_ context.Context, item tracker.Item, _, label string) (int, error) {
	e.logger.Logf("dry-run: would mark %s %q (#%d) as stale with label %q", item.Kind, item.Title, item.Number, label)
	return 0, nil
}

// Unstale logs the intended transition.
func (e *dryRunExecutor) Unstale(_ context.Context, item tracker.Item, label string) (int, error) {
	e.logger.Logf("dry-run: would remove label %q from %s %q (#%d)", label, item.Kind, item.Title, item.Number)
	return 0, nil
}

// Close logs the intended transition.
func (e *dryRunExecutor) Close(_ context.Context, item tracker.Item, _ string) (int, error) {
	e.logger.Logf("dry-run: would close %s %q (#%d)", item.Kind, item.Title, item.Number)
	return 0, nil
}
