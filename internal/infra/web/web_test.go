package web

import (
	"context"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *redis.Client, *Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{KeyPrefix: "test"}}

	return mr, rdb, NewStore(rdb, cfg)
}

func TestNotifier_RequiresGrantedPermission(t *testing.T) {
	_, _, store := setupTestStore(t)
	notifier := NewNotifier(store)
	ctx := context.Background()

	assert.False(t, notifier.IsAvailable(ctx, "u1"))

	require.NoError(t, store.SaveState(ctx, "u1", SessionState{NotificationPermission: "denied"}))
	assert.False(t, notifier.IsAvailable(ctx, "u1"))

	require.NoError(t, store.SaveState(ctx, "u1", SessionState{NotificationPermission: "granted"}))
	assert.True(t, notifier.IsAvailable(ctx, "u1"))
	assert.NoError(t, notifier.DeclareChannels(ctx, "u1", nil))
}

func TestNotifier_ScheduleAppendsStreamEvent(t *testing.T) {
	_, rdb, store := setupTestStore(t)
	notifier := NewNotifier(store)
	ctx := context.Background()

	require.NoError(t, notifier.Schedule(ctx, "u1", &entity.LocalNotification{
		ID:         "n1",
		Title:      "⚠️ Fall Detected!",
		Body:       "Ada may have fallen. Please check immediately.",
		ChannelID:  "critical-alerts",
		ScheduleAt: time.Unix(0, 0).UTC(),
	}))

	msgs, err := rdb.XRange(ctx, "test:web:u1:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, KindNotification, msgs[0].Values["kind"])
	assert.Contains(t, msgs[0].Values["payload"], "Fall Detected")
}

func TestHaptics_PlayAppendsPattern(t *testing.T) {
	_, rdb, store := setupTestStore(t)
	haptics := NewHaptics(store)
	ctx := context.Background()

	assert.False(t, haptics.IsAvailable(ctx, "u1"))
	require.NoError(t, store.SaveState(ctx, "u1", SessionState{NotificationPermission: "default", Vibrate: true}))
	assert.True(t, haptics.IsAvailable(ctx, "u1"))

	require.NoError(t, haptics.Play(ctx, "u1", entity.HapticPattern{Pulses: 2, Duration: 300 * time.Millisecond, Gap: 150 * time.Millisecond}))

	msgs, err := rdb.XRange(ctx, "test:web:u1:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, KindVibrate, msgs[0].Values["kind"])
	assert.JSONEq(t, `{"pattern":[300,150,300]}`, msgs[0].Values["payload"].(string))
}

func TestStore_WithoutRedis(t *testing.T) {
	store := NewStore(nil, &config.Config{})
	ctx := context.Background()

	assert.False(t, NewNotifier(store).IsAvailable(ctx, "u1"))
	assert.False(t, NewHaptics(store).IsAvailable(ctx, "u1"))
	assert.ErrorIs(t, NewNotifier(store).Schedule(ctx, "u1", &entity.LocalNotification{}), ErrUnavailable)
	assert.ErrorIs(t, store.SaveState(ctx, "u1", SessionState{}), ErrUnavailable)
}

func TestStore_RedisDown(t *testing.T) {
	mr, _, store := setupTestStore(t)
	mr.Close()

	assert.False(t, NewNotifier(store).IsAvailable(context.Background(), "u1"))
}
