package stale

import (
	"time"

	"github.com/lerenn/stale-bot/pkg/tracker"
)

// durationOfDays converts a possibly fractional day count to a duration at a
// fixed 24-hour day length. The conversion is not calendar-aware, so it is
// agnostic to daylight-saving and month boundaries.
func durationOfDays(days float64) time.Duration {
	return time.Duration(days * float64(24*time.Hour))
}

// WasLastUpdatedBefore reports whether the item's last update is at least
// the given number of days old. A threshold of zero is always satisfied.
func WasLastUpdatedBefore(item tracker.Item, days float64, now time.Time) bool {
	return now.Sub(item.UpdatedAt) >= durationOfDays(days)
}

// AppliedLabelBefore reports whether a label application is at least the
// given number of days old, by the same fixed day-length rule.
func AppliedLabelBefore(appliedAt time.Time, days float64, now time.Time) bool {
	return now.Sub(appliedAt) >= durationOfDays(days)
}
