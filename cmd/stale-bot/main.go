// Package main provides the command-line interface for the stale bot.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lerenn/stale-bot/pkg/config"
	"github.com/lerenn/stale-bot/pkg/logger"
	"github.com/lerenn/stale-bot/pkg/notify"
	"github.com/lerenn/stale-bot/pkg/report"
	"github.com/lerenn/stale-bot/pkg/stale"
	"github.com/lerenn/stale-bot/pkg/tracker"
)

var (
	quiet      bool
	verbose    bool
	dryRun     bool
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stale-bot",
		Short: "Stale Bot - issue and pull request inactivity sweeper",
		Long: `A scheduled bot that sweeps the open issues and pull requests of a ` +
			`repository, marks inactive ones stale, closes them after a grace ` +
			`period, and reports the closed items to Slack.`,
		SilenceUsage: true,
		RunE:         run,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Decide actions without performing any mutation")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildLogger builds the logger from the output flags.
func buildLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger(verbose)
}

// buildNotifier selects the report destination: Slack when a channel is
// configured and the run is real, the log otherwise.
func buildNotifier(cfg *config.Config, log logger.Logger) notify.Notifier {
	if cfg.DryRun || cfg.SlackChannelID == "" {
		return notify.NewLogNotifier(log)
	}
	return notify.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannelID)
}

func run(cmd *cobra.Command, _ []string) error {
	log := buildLogger()

	cfg, err := config.NewManager().Load(configPath)
	if err != nil {
		return err
	}
	if dryRun {
		cfg.DryRun = true
	}
	if cfg.DryRun {
		log.Debugf("----- running in dry mode -----")
	}

	trk := tracker.NewGitHub(cfg.RepoOwner, cfg.RepoName, cfg.GithubToken)

	var executor stale.Executor
	if cfg.DryRun {
		executor = stale.NewDryRunExecutor(log)
	} else {
		executor = stale.NewExecutor(trk, log)
	}

	engine := stale.NewEngine(stale.NewEngineParams{
		Tracker:  trk,
		Executor: executor,
		Logger:   log,
		Config:   cfg,
	})
	runner := stale.NewRunner(stale.NewRunnerParams{
		Tracker:    trk,
		Engine:     engine,
		Logger:     log,
		Operations: cfg.OperationsPerRun,
	})

	ctx := cmd.Context()
	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	blocks := report.Format(result.Closed)
	if err := exportOutputs(log, blocks, result.Closed); err != nil {
		return err
	}

	if err := buildNotifier(cfg, log).SendReport(ctx, blocks); err != nil {
		return err
	}

	log.Debugf("run complete: %d item(s) closed, %d operation(s) remaining", len(result.Closed), result.RemainingOps)
	if result.EarlyExit {
		// Budget exhaustion is a voluntary exit, not a failure; the next
		// scheduled run picks up from the tracker's current state.
		log.Logf("run stopped early after reaching the %d-operation budget", cfg.OperationsPerRun)
	}
	return nil
}
