// Package config loads and validates the run configuration for the stale bot.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the bot. They mirror the inputs of the
// scheduled workflow that invokes it.
const (
	EnvGithubToken       = "GITHUB_TOKEN"
	EnvGithubRepository  = "GITHUB_REPOSITORY"
	EnvDryRun            = "DRY_RUN"
	EnvStaleIssueMessage = "STALE_ISSUE_MESSAGE"
	EnvCloseMessage      = "CLOSE_MESSAGE"
	EnvStalePrMessage    = "STALE_PR_MESSAGE"
	EnvDaysBeforeStale   = "DAYS_BEFORE_STALE"
	EnvDaysBeforeClose   = "DAYS_BEFORE_CLOSE"
	EnvStaleIssueLabel   = "STALE_ISSUE_LABEL"
	EnvExemptIssueLabels = "EXEMPT_ISSUE_LABELS"
	EnvStalePrLabel      = "STALE_PR_LABEL"
	EnvExemptPrLabels    = "EXEMPT_PR_LABELS"
	EnvOperationsPerRun  = "OPERATIONS_PER_RUN"
	EnvSlackChannelID    = "SLACK_STALE_CHANNEL_ID"
	EnvSlackToken        = "SLACK_TOKEN"
)

// Config represents the configuration of one run. It is immutable for the
// duration of the run.
type Config struct {
	RepoOwner         string
	RepoName          string
	GithubToken       string
	DryRun            bool
	StaleIssueMessage string
	CloseMessage      string
	StalePrMessage    string
	DaysBeforeStale   float64
	DaysBeforeClose   float64
	StaleIssueLabel   string
	ExemptIssueLabels []string
	StalePrLabel      string
	ExemptPrLabels    []string
	OperationsPerRun  int
	SlackChannelID    string
	SlackToken        string
}

// fileConfig is the YAML shape of an optional config file. Pointer fields
// distinguish "absent" from a provided zero value; environment variables
// override anything set here.
type fileConfig struct {
	Repository        string   `yaml:"repository"`
	GithubToken       string   `yaml:"github_token"`
	DryRun            *bool    `yaml:"dry_run"`
	StaleIssueMessage string   `yaml:"stale_issue_message"`
	CloseMessage      string   `yaml:"close_message"`
	StalePrMessage    string   `yaml:"stale_pr_message"`
	DaysBeforeStale   *float64 `yaml:"days_before_stale"`
	DaysBeforeClose   *float64 `yaml:"days_before_close"`
	StaleIssueLabel   string   `yaml:"stale_issue_label"`
	ExemptIssueLabels []string `yaml:"exempt_issue_labels"`
	StalePrLabel      string   `yaml:"stale_pr_label"`
	ExemptPrLabels    []string `yaml:"exempt_pr_labels"`
	OperationsPerRun  *int     `yaml:"operations_per_run"`
	SlackChannelID    string   `yaml:"slack_channel_id"`
	SlackToken        string   `yaml:"slack_token"`
}

// Manager interface provides configuration loading functionality.
type Manager interface {
	// Load builds the run configuration from the optional YAML file at
	// configPath (empty string skips the file) and the environment, and
	// validates it.
	Load(configPath string) (*Config, error)
}

type realManager struct {
	// lookupEnv allows tests to substitute the environment.
	lookupEnv func(key string) (string, bool)
}

// NewManager creates a new Manager instance reading from the process
// environment.
func NewManager() Manager {
	return &realManager{lookupEnv: os.LookupEnv}
}

// Load loads the configuration from the optional file and the environment.
func (m *realManager) Load(configPath string) (*Config, error) {
	cfg := &Config{}
	daysStaleSet := false
	daysCloseSet := false

	if configPath != "" {
		fc, err := loadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := applyFile(cfg, fc); err != nil {
			return nil, err
		}
		daysStaleSet = fc.DaysBeforeStale != nil
		daysCloseSet = fc.DaysBeforeClose != nil
	}

	envStale, envClose, err := m.applyEnv(cfg)
	if err != nil {
		return nil, err
	}
	daysStaleSet = daysStaleSet || envStale
	daysCloseSet = daysCloseSet || envClose

	if err := cfg.validate(daysStaleSet, daysCloseSet); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile reads and decodes the YAML config file.
func loadFile(configPath string) (*fileConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &fc, nil
}

// applyFile copies the values present in the file onto the config.
func applyFile(cfg *Config, fc *fileConfig) error {
	if fc.Repository != "" {
		owner, name, err := splitRepository(fc.Repository)
		if err != nil {
			return err
		}
		cfg.RepoOwner, cfg.RepoName = owner, name
	}
	cfg.GithubToken = fc.GithubToken
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	cfg.StaleIssueMessage = fc.StaleIssueMessage
	cfg.CloseMessage = fc.CloseMessage
	cfg.StalePrMessage = fc.StalePrMessage
	if fc.DaysBeforeStale != nil {
		cfg.DaysBeforeStale = *fc.DaysBeforeStale
	}
	if fc.DaysBeforeClose != nil {
		cfg.DaysBeforeClose = *fc.DaysBeforeClose
	}
	cfg.StaleIssueLabel = fc.StaleIssueLabel
	cfg.ExemptIssueLabels = fc.ExemptIssueLabels
	cfg.StalePrLabel = fc.StalePrLabel
	cfg.ExemptPrLabels = fc.ExemptPrLabels
	if fc.OperationsPerRun != nil {
		cfg.OperationsPerRun = *fc.OperationsPerRun
	}
	cfg.SlackChannelID = fc.SlackChannelID
	cfg.SlackToken = fc.SlackToken
	return nil
}

// applyEnv overlays environment variables onto the config. It reports
// whether the two day thresholds were provided by the environment.
func (m *realManager) applyEnv(cfg *Config) (daysStaleSet, daysCloseSet bool, err error) {
	if v, ok := m.lookupEnv(EnvGithubRepository); ok {
		owner, name, err := splitRepository(v)
		if err != nil {
			return false, false, err
		}
		cfg.RepoOwner, cfg.RepoName = owner, name
	}
	if v, ok := m.lookupEnv(EnvGithubToken); ok {
		cfg.GithubToken = v
	}
	if v, ok := m.lookupEnv(EnvDryRun); ok {
		// The workflow runner converts booleans to strings, so only the
		// literal "true" enables dry-run.
		cfg.DryRun = v == "true"
	}
	if v, ok := m.lookupEnv(EnvStaleIssueMessage); ok {
		cfg.StaleIssueMessage = v
	}
	if v, ok := m.lookupEnv(EnvCloseMessage); ok {
		cfg.CloseMessage = v
	}
	if v, ok := m.lookupEnv(EnvStalePrMessage); ok {
		cfg.StalePrMessage = v
	}
	if v, ok := m.lookupEnv(EnvDaysBeforeStale); ok {
		cfg.DaysBeforeStale, err = parseDays(EnvDaysBeforeStale, v)
		if err != nil {
			return false, false, err
		}
		daysStaleSet = true
	}
	if v, ok := m.lookupEnv(EnvDaysBeforeClose); ok {
		cfg.DaysBeforeClose, err = parseDays(EnvDaysBeforeClose, v)
		if err != nil {
			return false, false, err
		}
		daysCloseSet = true
	}
	if v, ok := m.lookupEnv(EnvStaleIssueLabel); ok {
		cfg.StaleIssueLabel = v
	}
	if v, ok := m.lookupEnv(EnvExemptIssueLabels); ok {
		cfg.ExemptIssueLabels = ParseLabels(v)
	}
	if v, ok := m.lookupEnv(EnvStalePrLabel); ok {
		cfg.StalePrLabel = v
	}
	if v, ok := m.lookupEnv(EnvExemptPrLabels); ok {
		cfg.ExemptPrLabels = ParseLabels(v)
	}
	if v, ok := m.lookupEnv(EnvOperationsPerRun); ok {
		ops, err := strconv.Atoi(v)
		if err != nil {
			return false, false, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, EnvOperationsPerRun, v)
		}
		cfg.OperationsPerRun = ops
	}
	if v, ok := m.lookupEnv(EnvSlackChannelID); ok {
		cfg.SlackChannelID = v
	}
	if v, ok := m.lookupEnv(EnvSlackToken); ok {
		cfg.SlackToken = v
	}
	return daysStaleSet, daysCloseSet, nil
}

// parseDays parses a possibly fractional day threshold.
func parseDays(name, value string) (float64, error) {
	days, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, name, value)
	}
	return days, nil
}

// splitRepository splits an "owner/name" repository reference.
func splitRepository(repository string) (owner, name string, err error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, repository)
	}
	return parts[0], parts[1], nil
}

// ParseLabels splits a newline- or comma-separated label list, trimming
// whitespace and dropping empty entries. Workflow files cannot express
// arrays, so lists arrive as a single block of text.
func ParseLabels(value string) []string {
	var labels []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, label := range strings.Split(line, ",") {
			label = strings.TrimSpace(label)
			if label != "" {
				labels = append(labels, label)
			}
		}
	}
	return labels
}

// validate checks the assembled configuration before any tracker call.
func (c *Config) validate(daysStaleSet, daysCloseSet bool) error {
	if c.GithubToken == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvGithubToken)
	}
	if c.RepoOwner == "" || c.RepoName == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvGithubRepository)
	}
	if !daysStaleSet {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvDaysBeforeStale)
	}
	if !daysCloseSet {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvDaysBeforeClose)
	}
	if c.DaysBeforeStale < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeThreshold, EnvDaysBeforeStale)
	}
	if c.DaysBeforeClose < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeThreshold, EnvDaysBeforeClose)
	}
	if c.StaleIssueLabel == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvStaleIssueLabel)
	}
	if c.StalePrLabel == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, EnvStalePrLabel)
	}
	if c.OperationsPerRun <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOperations, c.OperationsPerRun)
	}
	if c.SlackChannelID != "" && c.SlackToken == "" {
		return fmt.Errorf("%w: %s is set", ErrMissingSlackToken, EnvSlackChannelID)
	}
	return nil
}
