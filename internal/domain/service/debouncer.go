package service

import "context"

// Debouncer suppresses re-processing of the same alert id inside a time window.
type Debouncer interface {
	// ShouldProcess reports whether the alert may be processed at nowMs and,
	// when it may, records nowMs as its last processing time.
	ShouldProcess(ctx context.Context, alertID string, nowMs int64) bool
}

// Sweeper is implemented by debouncers that keep expired entries in memory.
type Sweeper interface {
	// Sweep drops entries older than the window and returns how many were dropped.
	Sweep(nowMs int64) int
}
