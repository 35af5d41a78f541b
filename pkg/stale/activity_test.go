//go:build unit

package stale

import (
	"testing"
	"time"

	"github.com/lerenn/stale-bot/pkg/tracker"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

func TestWasLastUpdatedBefore(t *testing.T) {
	tests := []struct {
		name     string
		updated  time.Time
		days     float64
		expected bool
	}{
		{
			name:     "older than threshold",
			updated:  now.Add(-40 * 24 * time.Hour),
			days:     30,
			expected: true,
		},
		{
			name:     "exactly at threshold counts",
			updated:  now.Add(-30 * 24 * time.Hour),
			days:     30,
			expected: true,
		},
		{
			name:     "fresher than threshold",
			updated:  now.Add(-29 * 24 * time.Hour),
			days:     30,
			expected: false,
		},
		{
			name:     "fractional days",
			updated:  now.Add(-13 * time.Hour),
			days:     0.5,
			expected: true,
		},
		{
			name:     "fractional days not reached",
			updated:  now.Add(-11 * time.Hour),
			days:     0.5,
			expected: false,
		},
		{
			name:     "zero days always qualifies",
			updated:  now,
			days:     0,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tracker.Item{UpdatedAt: tt.updated}
			assert.Equal(t, tt.expected, WasLastUpdatedBefore(item, tt.days, now))
		})
	}
}

func TestAppliedLabelBefore(t *testing.T) {
	appliedAt := now.Add(-7 * 24 * time.Hour)

	assert.True(t, AppliedLabelBefore(appliedAt, 7, now), "boundary equal counts")
	assert.True(t, AppliedLabelBefore(appliedAt, 5, now))
	assert.False(t, AppliedLabelBefore(appliedAt, 8, now))
	assert.True(t, AppliedLabelBefore(now, 0, now), "zero days always qualifies")
}
