package notification

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

type noopPushProvider struct{}

// NewNoopPushProvider returns a provider that reports itself unavailable.
func NewNoopPushProvider() service.PushProvider {
	return noopPushProvider{}
}

func (noopPushProvider) IsAvailable() bool { return false }

func (noopPushProvider) SendMulticast(_ context.Context, tokens []string, _ *entity.PushMessage) (*entity.PushReport, error) {
	return &entity.PushReport{FailureCount: len(tokens)}, nil
}
