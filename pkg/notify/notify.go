// Package notify delivers run reports to an external channel.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/report"
)

// Notifier delivers a rendered report.
type Notifier interface {
	// SendReport delivers the report blocks.
	SendReport(ctx context.Context, blocks []report.Block) error
}

// slackAPI is the subset of the Slack client the notifier uses.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// slackNotifier posts the report to a Slack channel.
type slackNotifier struct {
	client    slackAPI
	channelID string
}

// NewSlackNotifier creates a Notifier posting to the given Slack channel.
func NewSlackNotifier(token, channelID string) Notifier {
	return newSlackNotifier(slack.New(token), channelID)
}

func newSlackNotifier(client slackAPI, channelID string) *slackNotifier {
	return &slackNotifier{client: client, channelID: channelID}
}

// SendReport posts the blocks to the configured channel.
func (n *slackNotifier) SendReport(ctx context.Context, blocks []report.Block) error {
	msgBlocks := make([]slack.Block, 0, len(blocks))
	for _, block := range blocks {
		if block.Type == "divider" {
			msgBlocks = append(msgBlocks, slack.NewDividerBlock())
			continue
		}
		text := slack.NewTextBlockObject(slack.MarkdownType, block.Text.Text, false, false)
		msgBlocks = append(msgBlocks, slack.NewSectionBlock(text, nil, nil))
	}

	if _, _, err := n.client.PostMessageContext(ctx, n.channelID, slack.MsgOptionBlocks(msgBlocks...)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// logNotifier logs the report instead of delivering it. Used under dry-run
// and when no Slack channel is configured.
type logNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a Notifier that only logs the report.
func NewLogNotifier(l logger.Logger) Notifier {
	return &logNotifier{logger: l}
}

// SendReport logs the report blocks as JSON.
func (n *logNotifier) SendReport(_ context.Context, blocks []report.Block) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	n.logger.Logf("report: %s", data)
	return nil
}
