package stale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lerenn/stale-bot/pkg/config"
	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/tracker"
)

// Action is the decision taken for one item.
type Action string

// Actions.
const (
	ActionNone      Action = "none"
	ActionMarkStale Action = "mark-stale"
	ActionUnstale   Action = "unstale"
	ActionClose     Action = "close"
)

// Engine decides and applies the staleness policy for a single item.
type Engine struct {
	tracker  tracker.Tracker
	executor Executor
	logger   logger.Logger
	config   *config.Config
	now      func() time.Time
}

// NewEngineParams contains parameters for creating a new Engine.
type NewEngineParams struct {
	Tracker  tracker.Tracker
	Executor Executor
	Logger   logger.Logger
	Config   *config.Config
	// Now overrides the clock, defaulting to time.Now.
	Now func() time.Time
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) *Engine {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		tracker:  params.Tracker,
		executor: params.Executor,
		logger:   params.Logger,
		config:   params.Config,
		now:      now,
	}
}

// Process evaluates one item against the policy and applies at most one
// state-changing transition, consuming budget for every tracker unit it
// uses. The skip rules are checked in strict precedence order: missing
// message template, assignees, exempt labels (even when the stale label is
// also present), then the already-stale and not-yet-stale branches.
func (e *Engine) Process(ctx context.Context, item tracker.Item, budget *Budget) (Action, error) {
	staleMessage := e.config.StaleIssueMessage
	staleLabel := e.config.StaleIssueLabel
	exemptLabels := e.config.ExemptIssueLabels
	if item.Kind == tracker.KindPullRequest {
		staleMessage = e.config.StalePrMessage
		staleLabel = e.config.StalePrLabel
		exemptLabels = e.config.ExemptPrLabels
	}

	// If no stale message is configured for this kind, the policy does not
	// manage it at all.
	if staleMessage == "" {
		e.logger.Debugf("skipping %s #%d due to empty stale message in the config", item.Kind, item.Number)
		return ActionNone, nil
	}

	// Assigned items are presumed actively owned.
	if len(item.Assignees) > 0 {
		e.logger.Debugf("skipping %s #%d because at least one person is assigned", item.Kind, item.Number)
		return ActionNone, nil
	}

	// Exempt labels block the policy unconditionally.
	if HasAnyLabel(item, exemptLabels) {
		e.logger.Debugf("skipping %s #%d because an exempt label is present", item.Kind, item.Number)
		return ActionNone, nil
	}

	if IsLabeled(item, staleLabel) {
		return e.processStale(ctx, item, staleLabel, budget)
	}

	if WasLastUpdatedBefore(item, e.config.DaysBeforeStale, e.now()) {
		cost, err := e.executor.MarkStale(ctx, item, staleMessage, staleLabel)
		budget.Consume(cost)
		if err != nil {
			return ActionNone, err
		}
		return ActionMarkStale, nil
	}

	return ActionNone, nil
}

// processStale handles an item that already carries the stale label: unstale
// it on qualifying activity, close it once the close threshold has passed,
// otherwise leave it alone.
func (e *Engine) processStale(ctx context.Context, item tracker.Item, staleLabel string, budget *Budget) (Action, error) {
	appliedAt, err := FindLastLabelApplication(ctx, e.tracker, budget, item.Number, staleLabel)
	if err != nil {
		if errors.Is(err, ErrNoLabelEvent) {
			// No information about when the label was applied. The safe
			// default is to leave the item untouched rather than close it.
			e.logger.Debugf("no %q application in history of #%d, leaving it untouched", staleLabel, item.Number)
			return ActionNone, nil
		}
		return ActionNone, err
	}

	comments, err := e.tracker.ListComments(ctx, item.Number, appliedAt)
	budget.Consume(1)
	if err != nil {
		return ActionNone, fmt.Errorf("failed to list comments on #%d: %w", item.Number, err)
	}

	switch {
	case hasHumanComment(comments):
		cost, err := e.executor.Unstale(ctx, item, staleLabel)
		budget.Consume(cost)
		if err != nil {
			return ActionNone, err
		}
		return ActionUnstale, nil

	case AppliedLabelBefore(appliedAt, e.config.DaysBeforeClose, e.now()):
		cost, err := e.executor.Close(ctx, item, e.config.CloseMessage)
		budget.Consume(cost)
		if err != nil {
			return ActionNone, err
		}
		return ActionClose, nil

	default:
		return ActionNone, nil
	}
}

// hasHumanComment reports whether at least one comment was authored by a
// human-classified actor.
func hasHumanComment(comments []tracker.Comment) bool {
	for _, comment := range comments {
		if comment.AuthorKind == tracker.AuthorHuman {
			return true
		}
	}
	return false
}
