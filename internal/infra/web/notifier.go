package web

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

// Notifier shows browser notifications when the user granted permission.
type Notifier struct {
	store *Store
}

func NewNotifier(store *Store) *Notifier {
	return &Notifier{store: store}
}

var _ service.LocalNotifier = (*Notifier)(nil)

func (n *Notifier) Via() string { return entity.ViaWeb }

func (n *Notifier) IsAvailable(ctx context.Context, userID string) bool {
	return n.store.permissionGranted(ctx, userID)
}

// DeclareChannels is a no-op, browsers have no notification channels.
func (n *Notifier) DeclareChannels(context.Context, string, []entity.NotificationChannel) error {
	return nil
}

func (n *Notifier) Schedule(ctx context.Context, userID string, notification *entity.LocalNotification) error {
	return n.store.append(ctx, userID, KindNotification, notification)
}

// Haptics vibrates through the browser vibration API.
type Haptics struct {
	store *Store
}

func NewHaptics(store *Store) *Haptics {
	return &Haptics{store: store}
}

var _ service.HapticsProvider = (*Haptics)(nil)

func (h *Haptics) Via() string { return entity.ViaWeb }

func (h *Haptics) IsAvailable(ctx context.Context, userID string) bool {
	return h.store.vibrateSupported(ctx, userID)
}

func (h *Haptics) Play(ctx context.Context, userID string, pattern entity.HapticPattern) error {
	return h.store.append(ctx, userID, KindVibrate, map[string][]int{"pattern": pattern.Sequence()})
}
