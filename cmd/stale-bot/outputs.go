package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/report"
	"github.com/lerenn/stale-bot/pkg/stale"
)

// outputDelimiter marks the end of a multiline workflow output value.
const outputDelimiter = "STALE_BOT_EOF"

// exportOutputs exposes the rendered report blocks and the close queue to
// downstream consumers of the run. Inside a workflow run the values are
// appended to the file named by GITHUB_OUTPUT using the multiline output
// syntax; elsewhere they are logged.
func exportOutputs(log logger.Logger, blocks []report.Block, queue []stale.ClosedItem) error {
	blocksJSON, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("failed to encode report blocks: %w", err)
	}
	// An empty queue still exports a valid JSON array.
	if queue == nil {
		queue = []stale.ClosedItem{}
	}
	queueJSON, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("failed to encode close queue: %w", err)
	}

	outputPath := os.Getenv("GITHUB_OUTPUT")
	if outputPath == "" {
		log.Logf("blocks: %s", blocksJSON)
		log.Logf("queue: %s", queueJSON)
		return nil
	}

	f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := writeOutput(f, "blocks", blocksJSON); err != nil {
		return err
	}
	return writeOutput(f, "queue", queueJSON)
}

// writeOutput appends one multiline workflow output.
func writeOutput(f *os.File, name string, value []byte) error {
	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, outputDelimiter, value, outputDelimiter); err != nil {
		return fmt.Errorf("failed to write output %q: %w", name, err)
	}
	return nil
}
