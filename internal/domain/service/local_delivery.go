package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// LocalNotifier schedules a notification on the principal's own device.
type LocalNotifier interface {
	// Via names the implementation, "native" or "web".
	Via() string

	IsAvailable(ctx context.Context, userID string) bool

	// DeclareChannels registers the static channel set on the device.
	DeclareChannels(ctx context.Context, userID string, channels []entity.NotificationChannel) error

	Schedule(ctx context.Context, userID string, notification *entity.LocalNotification) error
}

// HapticsProvider plays a vibration pattern on the principal's own device.
type HapticsProvider interface {
	Via() string

	IsAvailable(ctx context.Context, userID string) bool

	Play(ctx context.Context, userID string, pattern entity.HapticPattern) error
}
