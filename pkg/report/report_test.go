//go:build unit

package report

import (
	"testing"

	"github.com/lerenn/stale-bot/pkg/stale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_EmptyQueue(t *testing.T) {
	blocks := Format(nil)

	require.Len(t, blocks, 4)
	assert.Equal(t, "section", blocks[0].Type)
	assert.Equal(t, "Hi, this is your friendly Stale Action BOT with the latest closed issues", blocks[0].Text.Text)
	assert.Equal(t, "divider", blocks[1].Type)
	assert.Nil(t, blocks[1].Text)
	assert.Equal(t, "[0] *_Issues were closed_*", blocks[2].Text.Text)
	assert.Equal(t, "There are none! Great job!", blocks[3].Text.Text)
}

func TestFormat_TwoItems(t *testing.T) {
	queue := []stale.ClosedItem{
		{URL: "https://github.com/octo/staleness/issues/1", Title: "First issue"},
		{URL: "https://github.com/octo/staleness/issues/2", Title: "Second issue"},
	}

	blocks := Format(queue)

	require.Len(t, blocks, 4)
	assert.Equal(t, "[2] *_Issues were closed_*", blocks[2].Text.Text)
	assert.Equal(t,
		"1. <https://github.com/octo/staleness/issues/1|First issue>\n"+
			"2. <https://github.com/octo/staleness/issues/2|Second issue>\n",
		blocks[3].Text.Text,
		"numbered links in insertion order")
}

func TestFormat_Deterministic(t *testing.T) {
	queue := []stale.ClosedItem{
		{URL: "https://github.com/octo/staleness/issues/3", Title: "Third issue"},
	}

	assert.Equal(t, Format(queue), Format(queue))
}
