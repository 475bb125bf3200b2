package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/errors"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	defaultStatsDBName = "guardian"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Pipeline `optional:"true"`
}

// New opens the database holding fcm_tokens and the subject tables. Only
// fcm_tokens is owned by this service and migrated in develop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single upsert statement.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		dbName := params.Config.Env.ServiceName
		if dbName == "" {
			dbName = defaultStatsDBName
		}
		if err := params.Metrics.WatchDB(sqlDB, dbName); err != nil {
			params.Logger.Warn("Failed to export PostgreSQL pool metrics", slog.Any("error", err))
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.Env == constants.EnvDevelop {
				if err := db.WithContext(ctx).AutoMigrate(&model.DeviceTokenModel{}); err != nil {
					return errors.Wrap(err, "failed to migrate fcm_tokens")
				}
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// watchPoolWaits logs when upserts queue for a connection. Token
// registrations burst at dispatcher start, so waits show up there first.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "PostgreSQL pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("open", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("max_open", cur.MaxOpenConnections),
		)
	}
}
