package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// EscalationSink receives critical alerts no delivery path could notify anyone about.
type EscalationSink interface {
	Escalate(ctx context.Context, payload *entity.DeliveryPayload, result *entity.DeliveryResult) error
}
