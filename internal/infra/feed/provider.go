package feed

import (
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the configured feed and the HTTP push feed. The push feed is
// always provided so its route can answer 503 when another source is in use.
type Result struct {
	fx.Out

	Feed service.AlertFeed
	Push *PushFeed
}

// New creates an AlertFeed based on configuration
func New(params Params) (Result, error) {
	cfg := params.Config.Feed
	logger := params.Logger
	push := NewPushFeed(logger)

	var (
		feed service.AlertFeed
		err  error
	)

	switch cfg.Provider {
	case constants.FeedProviderPostgres:
		logger.Info("Using Postgres LISTEN/NOTIFY alert feed", slog.String("channel", cfg.Postgres.Channel))
		feed, err = NewPostgresFeed(cfg.Postgres, logger)

	case constants.FeedProviderGoogle:
		logger.Info("Using Google Pub/Sub alert feed", slog.String("subscription_id", cfg.Google.SubscriptionID))
		feed, err = NewGoogleFeed(cfg.Google, logger)

	case constants.FeedProviderKafka:
		logger.Info("Using Kafka alert feed", slog.String("topic", cfg.Kafka.Topic))
		feed, err = NewKafkaFeed(cfg.Kafka, logger)

	case constants.FeedProviderPush:
		logger.Info("Using HTTP push alert feed")
		feed = push

	default:
		return Result{}, errors.Errorf("unsupported feed provider: %s", cfg.Provider)
	}

	if err != nil {
		return Result{}, err
	}

	return Result{Feed: feed, Push: push}, nil
}
