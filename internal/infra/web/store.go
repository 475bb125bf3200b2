// Package web delivers notifications and vibration to caregivers using the
// browser client. The browser keeps its permission state in a Redis hash and
// consumes a per-user Redis stream of events.
package web

import (
	"context"
	"encoding/json"
	"time"

	"guardian/config"
	"guardian/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	fieldNotificationPermission = "notification"
	fieldVibrate                = "vibrate"
	fieldUpdatedAt              = "updated_at"
	permissionGranted           = "granted"
	streamMaxLen                = 100
)

// Event kinds appended to the user stream.
const (
	KindNotification = "notification"
	KindVibrate      = "vibrate"
)

// ErrUnavailable is returned when Redis is not configured.
var ErrUnavailable = errors.New("web delivery unavailable")

// SessionState is what the browser reports about itself.
type SessionState struct {
	NotificationPermission string `json:"notification_permission" validate:"required,oneof=granted denied default"`
	Vibrate                bool   `json:"vibrate"`
}

// Store reads browser state and appends browser events.
type Store struct {
	rdb    *redis.Client
	prefix string
}

// NewStore wires the store to the shared client, which may be nil.
func NewStore(rdb *redis.Client, cfg *config.Config) *Store {
	prefix := "guardian"
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) stateKey(userID string) string {
	return s.prefix + ":web:" + userID
}

func (s *Store) streamKey(userID string) string {
	return s.prefix + ":web:" + userID + ":events"
}

// SaveState records the browser's permission and vibration support.
func (s *Store) SaveState(ctx context.Context, userID string, state SessionState) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	vibrate := "0"
	if state.Vibrate {
		vibrate = "1"
	}

	err := s.rdb.HSet(ctx, s.stateKey(userID),
		fieldNotificationPermission, state.NotificationPermission,
		fieldVibrate, vibrate,
		fieldUpdatedAt, time.Now().UTC().Format(time.RFC3339),
	).Err()

	return errors.Wrap(err, "save web session state")
}

func (s *Store) field(ctx context.Context, userID, field string) (string, error) {
	if s.rdb == nil {
		return "", ErrUnavailable
	}

	val, err := s.rdb.HGet(ctx, s.stateKey(userID), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	return val, errors.WithStack(err)
}

func (s *Store) permissionGranted(ctx context.Context, userID string) bool {
	val, err := s.field(ctx, userID, fieldNotificationPermission)

	return err == nil && val == permissionGranted
}

func (s *Store) vibrateSupported(ctx context.Context, userID string) bool {
	val, err := s.field(ctx, userID, fieldVibrate)

	return err == nil && val == "1"
}

func (s *Store) append(ctx context.Context, userID, kind string, payload any) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal web event")
	}

	err = s.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: s.streamKey(userID),
		MaxLen: streamMaxLen,
		Values: map[string]any{
			"kind":    kind,
			"payload": string(data),
		},
	}).Err()

	return errors.Wrapf(err, "append %s event", kind)
}
