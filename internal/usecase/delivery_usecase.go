package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// DeliveryUsecase fans a processed alert out over push, local notification and haptics.
type DeliveryUsecase interface {
	// DeclareChannels registers the notification channels on the user's device.
	DeclareChannels(ctx context.Context, userID string) error

	// Deliver attempts every path independently and reports each outcome.
	// It never returns nil.
	Deliver(ctx context.Context, payload *entity.DeliveryPayload) *entity.DeliveryResult
}
