package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	mockService "guardian/internal/mocks/service"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenRegistryFixtures holds all test dependencies for token registry tests.
type tokenRegistryFixtures struct {
	service   *tokenRegistryService
	registrar *mockService.MockPushRegistrar
	tokenRepo *mockRepo.MockDeviceTokenRepository
	now       time.Time
}

func createTestTokenRegistryService(t *testing.T) tokenRegistryFixtures {
	registrar := mockService.NewMockPushRegistrar(t)
	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	svc := NewTokenRegistryService(TokenRegistryServiceParams{
		Logger:    newDiscardLogger(),
		Registrar: registrar,
		TokenRepo: tokenRepo,
	}).(*tokenRegistryService)
	svc.now = func() time.Time { return now }

	return tokenRegistryFixtures{
		service:   svc,
		registrar: registrar,
		tokenRepo: tokenRepo,
		now:       now,
	}
}

func TestTokenRegistryService_RegisterToken_Success(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()
	info := entity.DeviceInfo{Platform: "android", Model: "Pixel 8", Manufacturer: "Google", OSVersion: "14"}

	fx.registrar.EXPECT().IsAvailable(ctx, "caregiver-1").Return(true)
	fx.registrar.EXPECT().RequestPermission(ctx, "caregiver-1").Return(true, nil)
	fx.registrar.EXPECT().Register(ctx, "caregiver-1").Return("fcm-token", nil)
	fx.registrar.EXPECT().DeviceInfo(ctx, "caregiver-1").Return(info)
	fx.tokenRepo.EXPECT().
		Upsert(ctx, &entity.DeviceToken{
			UserID:     "caregiver-1",
			Token:      "fcm-token",
			DeviceInfo: info,
			LastUsedAt: fx.now,
		}).
		Return(nil)

	fx.service.RegisterToken(ctx, "caregiver-1")
}

func TestTokenRegistryService_RegisterToken_NoCapabilityIsNoop(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()

	fx.registrar.EXPECT().IsAvailable(ctx, "caregiver-1").Return(false)

	fx.service.RegisterToken(ctx, "caregiver-1")

	fx.tokenRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestTokenRegistryService_RegisterToken_PermissionDenied(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()

	fx.registrar.EXPECT().IsAvailable(ctx, "caregiver-1").Return(true)
	fx.registrar.EXPECT().RequestPermission(ctx, "caregiver-1").Return(false, nil)

	fx.service.RegisterToken(ctx, "caregiver-1")

	fx.registrar.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	fx.tokenRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestTokenRegistryService_RegisterToken_ErrorsAreSwallowed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx tokenRegistryFixtures, ctx context.Context)
	}{
		{
			name: "permission request fails",
			setup: func(fx tokenRegistryFixtures, ctx context.Context) {
				fx.registrar.EXPECT().RequestPermission(ctx, "caregiver-1").Return(false, errors.New("timeout"))
			},
		},
		{
			name: "registration fails",
			setup: func(fx tokenRegistryFixtures, ctx context.Context) {
				fx.registrar.EXPECT().RequestPermission(ctx, "caregiver-1").Return(true, nil)
				fx.registrar.EXPECT().Register(ctx, "caregiver-1").Return("", errors.New("SERVICE_NOT_AVAILABLE"))
			},
		},
		{
			name: "upsert fails",
			setup: func(fx tokenRegistryFixtures, ctx context.Context) {
				fx.registrar.EXPECT().RequestPermission(ctx, "caregiver-1").Return(true, nil)
				fx.registrar.EXPECT().Register(ctx, "caregiver-1").Return("fcm-token", nil)
				fx.registrar.EXPECT().DeviceInfo(ctx, "caregiver-1").Return(entity.DeviceInfo{})
				fx.tokenRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTokenRegistryService(t)
			ctx := context.Background()
			fx.registrar.EXPECT().IsAvailable(ctx, "caregiver-1").Return(true)
			tt.setup(fx, ctx)

			assert.NotPanics(t, func() { fx.service.RegisterToken(ctx, "caregiver-1") })
		})
	}
}

func TestTokenRegistryService_Upsert(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(_ context.Context, token *entity.DeviceToken) {
			token.ID = "token-id"
		}).
		Return(nil)

	token, err := fx.service.Upsert(ctx, "caregiver-1", &usecase.RegisterTokenInput{
		Token:      "  fcm-token ",
		DeviceInfo: entity.DeviceInfo{Platform: "ios"},
	})

	require.NoError(t, err)
	assert.Equal(t, "token-id", token.ID)
	assert.Equal(t, "fcm-token", token.Token)
	assert.Equal(t, "caregiver-1", token.UserID)
	assert.Equal(t, fx.now, token.LastUsedAt)
}

func TestTokenRegistryService_Upsert_Invalid(t *testing.T) {
	fx := createTestTokenRegistryService(t)

	_, err := fx.service.Upsert(context.Background(), "caregiver-1", &usecase.RegisterTokenInput{Token: " "})

	assert.ErrorIs(t, err, repository.ErrInvalidDeviceToken)
}

func TestTokenRegistryService_Upsert_RepositoryError(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()
	repoErr := errors.New("db down")

	fx.tokenRepo.EXPECT().Upsert(ctx, mock.Anything).Return(repoErr)

	_, err := fx.service.Upsert(ctx, "caregiver-1", &usecase.RegisterTokenInput{Token: "fcm-token"})

	assert.ErrorIs(t, err, repoErr)
}

func TestTokenRegistryService_ListTokens(t *testing.T) {
	fx := createTestTokenRegistryService(t)
	ctx := context.Background()
	tokens := []*entity.DeviceToken{{ID: "1", UserID: "caregiver-1", Token: "t1"}}

	fx.tokenRepo.EXPECT().FindByUserIDs(ctx, []string{"caregiver-1"}).Return(tokens, nil)

	got, err := fx.service.ListTokens(ctx, "caregiver-1")

	require.NoError(t, err)
	assert.Equal(t, tokens, got)
}
