package stale

import "errors"

// Staleness-policy errors.
var (
	// ErrNoLabelEvent is returned when an item currently carries a label but
	// no matching "labeled" event exists in its history. This happens when
	// the label was added by a mechanism the tracker did not record, or when
	// the history is truncated.
	ErrNoLabelEvent = errors.New("no label application found in event history")
)
