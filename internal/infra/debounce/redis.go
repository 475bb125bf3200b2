package debounce

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"guardian/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

// Redis shares the debounce window between replicas with SET NX PX.
// Expiry is left to Redis, so no sweep is needed.
type Redis struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
	logger *slog.Logger
}

var _ service.Debouncer = (*Redis)(nil)

func NewRedis(rdb *redis.Client, prefix string, window time.Duration, logger *slog.Logger) *Redis {
	return &Redis{
		rdb:    rdb,
		prefix: prefix,
		window: window,
		logger: logger,
	}
}

// ShouldProcess fails open: when Redis is unreachable the alert is processed.
func (r *Redis) ShouldProcess(ctx context.Context, alertID string, nowMs int64) bool {
	key := r.prefix + ":debounce:" + alertID

	ok, err := r.rdb.SetNX(ctx, key, strconv.FormatInt(nowMs, 10), r.window).Result()
	if err != nil {
		r.logger.Warn("Debounce check failed, processing alert",
			slog.String("alert_id", alertID),
			slog.Any("error", err),
		)

		return true
	}

	return ok
}
