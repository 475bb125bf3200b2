package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// PushProvider sends remote push notifications to device tokens.
type PushProvider interface {
	// IsAvailable reports whether the provider is configured to send.
	IsAvailable() bool

	// SendMulticast sends one message to at most 500 tokens and reports
	// tokens the provider rejected as invalid or unregistered.
	SendMulticast(ctx context.Context, tokens []string, msg *entity.PushMessage) (*entity.PushReport, error)
}

// PushRegistrar obtains a push token from the user's own device.
type PushRegistrar interface {
	IsAvailable(ctx context.Context, userID string) bool

	// RequestPermission asks the device for notification permission.
	RequestPermission(ctx context.Context, userID string) (bool, error)

	// Register blocks until the device reports a token or a registration error.
	Register(ctx context.Context, userID string) (string, error)

	DeviceInfo(ctx context.Context, userID string) entity.DeviceInfo
}
