package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/usecase"

	"go.uber.org/fx"
)

// TokenRegistryServiceParams holds dependencies for the token registry, injected by Fx
type TokenRegistryServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Registrar service.PushRegistrar
	TokenRepo repository.DeviceTokenRepository
}

type tokenRegistryService struct {
	logger    *slog.Logger
	registrar service.PushRegistrar
	tokenRepo repository.DeviceTokenRepository
	now       func() time.Time
}

// NewTokenRegistryService creates a new token registry service instance
func NewTokenRegistryService(params TokenRegistryServiceParams) usecase.TokenRegistryUsecase {
	return &tokenRegistryService{
		logger:    params.Logger,
		registrar: params.Registrar,
		tokenRepo: params.TokenRepo,
		now:       time.Now,
	}
}

// RegisterToken asks the user's device for a push token and stores it.
func (s *tokenRegistryService) RegisterToken(ctx context.Context, userID string) {
	logger := s.logger.With(slog.String("user_id", userID))

	if !s.registrar.IsAvailable(ctx, userID) {
		logger.Debug("Push registration not available on this device, skipping")

		return
	}

	granted, err := s.registrar.RequestPermission(ctx, userID)
	if err != nil {
		logger.Warn("Failed to request push permission", slog.Any("error", err))

		return
	}
	if !granted {
		logger.Info("Push permission denied")

		return
	}

	token, err := s.registrar.Register(ctx, userID)
	if err != nil {
		logger.Warn("Push registration failed", slog.Any("error", err))

		return
	}

	deviceToken := &entity.DeviceToken{
		UserID:     userID,
		Token:      token,
		DeviceInfo: s.registrar.DeviceInfo(ctx, userID),
		LastUsedAt: s.now().UTC(),
	}
	if err := s.tokenRepo.Upsert(ctx, deviceToken); err != nil {
		logger.Error("Failed to store device token", slog.Any("error", err))

		return
	}

	logger.Info("Device token registered", slog.String("token_id", deviceToken.ID))
}

// Upsert stores a token reported by a client app
func (s *tokenRegistryService) Upsert(ctx context.Context, userID string, input *usecase.RegisterTokenInput) (*entity.DeviceToken, error) {
	token := strings.TrimSpace(input.Token)
	if userID == "" || token == "" {
		return nil, repository.ErrInvalidDeviceToken
	}

	deviceToken := &entity.DeviceToken{
		UserID:     userID,
		Token:      token,
		DeviceInfo: input.DeviceInfo,
		LastUsedAt: s.now().UTC(),
	}
	if err := s.tokenRepo.Upsert(ctx, deviceToken); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device token")
	}

	return deviceToken, nil
}

// ListTokens retrieves the tokens registered by a user
func (s *tokenRegistryService) ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindByUserIDs(ctx, []string{userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device tokens")
	}

	return tokens, nil
}
