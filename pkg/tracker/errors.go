package tracker

import "errors"

// Tracker-specific errors.
var (
	ErrNotFound     = errors.New("item not found")
	ErrUnauthorized = errors.New("unauthorized access to tracker API")
	ErrRateLimited  = errors.New("rate limited by tracker API")
)
