package usecase

import "context"

// AlertDispatcher drives every alert from the feed through debounce,
// content synthesis and delivery.
type AlertDispatcher interface {
	// Start subscribes to the feed on behalf of the principal. Calling it
	// again while running is a no-op. An unreachable feed is retried in the
	// background and is not reported as an error.
	Start(ctx context.Context, principalID string) error

	// Stop closes the subscription and waits for in-flight alerts.
	Stop()
}
