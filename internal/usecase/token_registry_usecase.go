package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// RegisterTokenInput is a push token reported by a client app
type RegisterTokenInput struct {
	Token      string            `json:"token" validate:"required,max=4096"`
	DeviceInfo entity.DeviceInfo `json:"deviceInfo"`
}

// TokenRegistryUsecase keeps the device token registry current
type TokenRegistryUsecase interface {
	// RegisterToken obtains a token from the user's own device and stores it.
	// Failures are logged and never surface to the caller.
	RegisterToken(ctx context.Context, userID string)

	// Upsert stores a token reported by a client app
	Upsert(ctx context.Context, userID string, input *RegisterTokenInput) (*entity.DeviceToken, error)

	// ListTokens retrieves the tokens registered by a user
	ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)
}
