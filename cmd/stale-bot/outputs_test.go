//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/report"
	"github.com/lerenn/stale-bot/pkg/stale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOutputs_ToGithubOutputFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	queue := []stale.ClosedItem{
		{URL: "https://github.com/octo/staleness/issues/1", Title: "First issue"},
	}
	blocks := report.Format(queue)

	err := exportOutputs(logger.NewNoopLogger(), blocks, queue)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "blocks<<STALE_BOT_EOF\n")
	assert.Contains(t, content, "queue<<STALE_BOT_EOF\n")
	assert.Contains(t, content, `"url":"https://github.com/octo/staleness/issues/1"`)
	assert.Contains(t, content, `[1] *_Issues were closed_*`)
}

func TestExportOutputs_EmptyQueueExportsJSONArray(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputPath)

	err := exportOutputs(logger.NewNoopLogger(), report.Format(nil), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "queue<<STALE_BOT_EOF\n[]\n")
}

func TestExportOutputs_LogsWithoutGithubOutput(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	err := exportOutputs(logger.NewNoopLogger(), report.Format(nil), nil)
	assert.NoError(t, err)
}
