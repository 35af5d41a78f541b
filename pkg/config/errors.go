package config

import "errors"

// Configuration-specific errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrMissingInput       = errors.New("missing required input")
	ErrInvalidNumber      = errors.New("input did not parse to a valid number")
	ErrNegativeThreshold  = errors.New("day threshold must not be negative")
	ErrInvalidOperations  = errors.New("operations per run must be a positive integer")
	ErrInvalidRepository  = errors.New("repository must be in owner/name format")
	ErrMissingSlackToken  = errors.New("slack channel configured without a slack token")
)
