package feed

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"github.com/lib/pq"
)

const listenerPingInterval = 90 * time.Second

// PostgresFeed listens for NOTIFY payloads sent by an insert trigger on the
// alerts table.
type PostgresFeed struct {
	cfg    config.PostgresFeedConfig
	logger *slog.Logger
}

var _ service.AlertFeed = (*PostgresFeed)(nil)

func NewPostgresFeed(cfg config.PostgresFeedConfig, logger *slog.Logger) (*PostgresFeed, error) {
	if cfg.DSN == "" {
		return nil, errors.New("feed.postgres.dsn is required for postgres feed")
	}

	return &PostgresFeed{cfg: cfg, logger: logger}, nil
}

func (f *PostgresFeed) Subscribe(ctx context.Context, handler service.AlertHandler) (service.Subscription, error) {
	listener := pq.NewListener(f.cfg.DSN, f.cfg.MinReconnectInterval, f.cfg.MaxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				f.logger.Warn("[Feed] Postgres listener event", slog.Int("event", int(event)), slog.Any("error", err))
			}
		})

	if err := listener.Listen(f.cfg.Channel); err != nil {
		_ = listener.Close()

		return nil, errors.Wrapf(err, "listen on channel %s", f.cfg.Channel)
	}

	f.logger.Info("[Feed] Listening for alert inserts", slog.String("channel", f.cfg.Channel))

	loopCtx, cancel := context.WithCancel(ctx)
	sub := newLoopSubscription(cancel, listener.Close)

	go func() {
		defer close(sub.done)
		f.consume(loopCtx, listener.Notify, listener.Ping, handler)
	}()

	return sub, nil
}

func (f *PostgresFeed) consume(ctx context.Context, notifications <-chan *pq.Notification, ping func() error, handler service.AlertHandler) {
	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n, ok := <-notifications:
			if !ok {
				return
			}
			// A nil notification means the connection was re-established;
			// inserts made while disconnected were not observed.
			if n == nil {
				f.logger.Warn("[Feed] Postgres listener reconnected, events may have been missed")

				continue
			}
			dispatch(f.logger, "postgres", []byte(n.Extra), handler)

		case <-ticker.C:
			if err := ping(); err != nil {
				f.logger.Warn("[Feed] Postgres listener ping failed", slog.Any("error", err))
			}
		}
	}
}
