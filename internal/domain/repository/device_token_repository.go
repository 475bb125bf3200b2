// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrInvalidDeviceToken is returned when a token is missing its user or token value.
	ErrInvalidDeviceToken = errors.New("device token requires user id and token")
)

// DeviceTokenRepository defines the persistence operations of the device token registry.
type DeviceTokenRepository interface {
	// Upsert inserts the token or, when (user_id, token) already exists,
	// refreshes its device info and last used time.
	Upsert(ctx context.Context, token *entity.DeviceToken) error

	// FindByUserIDs retrieves every token registered by any of the users.
	FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.DeviceToken, error)
}
