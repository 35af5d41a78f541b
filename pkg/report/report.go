// Package report renders a run's close queue into Slack Block Kit blocks.
// The rendering is a pure function of the queue: deterministic, no side
// effects.
package report

import (
	"fmt"
	"strings"

	"github.com/lerenn/stale-bot/pkg/stale"
)

// Block types and texts used in the rendered report.
const (
	blockTypeSection = "section"
	blockTypeDivider = "divider"
	textTypeMarkdown = "mrkdwn"

	headerText     = "Hi, this is your friendly Stale Action BOT with the latest closed issues"
	emptyQueueText = "There are none! Great job!"
)

// Block is one Slack Block Kit block. Text is nil for divider blocks.
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Text is the text object of a section block.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Format renders the close queue: a header section, a divider, a count line,
// and a body listing one numbered link per closed item in queue order. An
// empty queue yields a fixed placeholder body instead of an empty list.
func Format(queue []stale.ClosedItem) []Block {
	blocks := []Block{
		{
			Type: blockTypeSection,
			Text: &Text{Type: textTypeMarkdown, Text: headerText},
		},
		{
			Type: blockTypeDivider,
		},
		{
			Type: blockTypeSection,
			Text: &Text{Type: textTypeMarkdown, Text: fmt.Sprintf("[%d] *_Issues were closed_*", len(queue))},
		},
	}

	var body strings.Builder
	for i, item := range queue {
		fmt.Fprintf(&body, "%d. <%s|%s>\n", i+1, item.URL, item.Title)
	}

	text := body.String()
	if text == "" {
		text = emptyQueueText
	}

	return append(blocks, Block{
		Type: blockTypeSection,
		Text: &Text{Type: textTypeMarkdown, Text: text},
	})
}
