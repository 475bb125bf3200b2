package feed

import (
	"context"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

// GoogleFeed pulls alert events from a Pub/Sub subscription.
type GoogleFeed struct {
	cfg    config.GoogleFeedConfig
	logger *slog.Logger
}

var _ service.AlertFeed = (*GoogleFeed)(nil)

func NewGoogleFeed(cfg config.GoogleFeedConfig, logger *slog.Logger) (*GoogleFeed, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google feed")
	}
	if cfg.SubscriptionID == "" {
		return nil, errors.New("subscription ID is required for google feed")
	}

	return &GoogleFeed{cfg: cfg, logger: logger}, nil
}

func (f *GoogleFeed) Subscribe(ctx context.Context, handler service.AlertHandler) (service.Subscription, error) {
	var opts []option.ClientOption
	if f.cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(f.cfg.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, f.cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriber := client.Subscriber(f.cfg.SubscriptionID)

	f.logger.Info("[Feed] Google Pub/Sub subscriber initialized",
		slog.String("project_id", f.cfg.ProjectID),
		slog.String("subscription_id", f.cfg.SubscriptionID),
	)

	loopCtx, cancel := context.WithCancel(ctx)
	sub := newLoopSubscription(cancel, client.Close)

	go func() {
		defer close(sub.done)

		err := subscriber.Receive(loopCtx, func(_ context.Context, msg *pubsub.Message) {
			dispatch(f.logger, "google", msg.Data, handler)
			msg.Ack()
		})
		if err != nil && loopCtx.Err() == nil {
			f.logger.Error("[Feed] Pub/Sub receive stopped", slog.Any("error", err))
		}
	}()

	return sub, nil
}
