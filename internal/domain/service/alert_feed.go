package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// AlertHandler receives every alert insert delivered by a feed.
// It must return quickly; processing happens elsewhere.
type AlertHandler func(alert *entity.AlertEvent)

// AlertFeed is an insert-only change stream of alert records.
// Delivery is at-least-once, the same alert may arrive more than once.
type AlertFeed interface {
	Subscribe(ctx context.Context, handler AlertHandler) (Subscription, error)
}

// Subscription is a standing feed subscription.
type Subscription interface {
	Close() error
}
