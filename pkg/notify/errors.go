package notify

import "errors"

// Notification-specific errors.
var (
	ErrDeliveryFailed = errors.New("failed to deliver report")
)
