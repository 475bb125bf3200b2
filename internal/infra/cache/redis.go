// Package cache provides the shared Redis connection.
package cache

import (
	"context"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. It returns nil when Redis is disabled so that
// dependants fall back to their in-process behaviour.
func New(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("[Redis] Disabled")

		return nil, nil //nolint:nilnil // absent client is a valid configuration
	}

	if cfg.Addr == "" {
		return nil, errors.New("redis addr is required when redis is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
