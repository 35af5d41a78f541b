package stale

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/stale-bot/pkg/tracker"
)

// FindLastLabelApplication returns the timestamp of the most recent
// "labeled" event for the given label on an item, following the event
// listing's pagination until the tracker reports no further pages. One
// budget unit is consumed per page fetched.
//
// The most recent application is the last matching event in event order,
// not the maximum timestamp: ties are broken by original event order.
// Label names are compared byte-exact here, unlike current-label matching:
// the tracker records the canonical name it stored, so folding could only
// conflate distinct labels.
//
// Returns ErrNoLabelEvent when no matching event exists, which is reachable
// whenever the label was added outside recorded history.
func FindLastLabelApplication(ctx context.Context, t tracker.Tracker, budget *Budget, number int, label string) (time.Time, error) {
	var appliedAt time.Time
	found := false

	page := 1
	for page != 0 {
		events, next, err := t.ListEvents(ctx, number, page)
		budget.Consume(1)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to list events for #%d: %w", number, err)
		}

		for _, event := range events {
			if event.Kind == tracker.EventLabeled && event.Label == label {
				appliedAt = event.CreatedAt
				found = true
			}
		}

		page = next
	}

	if !found {
		return time.Time{}, fmt.Errorf("%w: %q on #%d", ErrNoLabelEvent, label, number)
	}
	return appliedAt, nil
}
