package feed

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"github.com/segmentio/kafka-go"
)

const kafkaRetryDelay = time.Second

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaFeed consumes alert rows from a topic with at-least-once commits.
type KafkaFeed struct {
	cfg       config.KafkaFeedConfig
	logger    *slog.Logger
	newReader func() messageReader
}

var _ service.AlertFeed = (*KafkaFeed)(nil)

func NewKafkaFeed(cfg config.KafkaFeedConfig, logger *slog.Logger) (*KafkaFeed, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("brokers are required for kafka feed")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic is required for kafka feed")
	}
	if cfg.GroupID == "" {
		return nil, errors.New("group ID is required for kafka feed")
	}

	f := &KafkaFeed{cfg: cfg, logger: logger}
	f.newReader = func() messageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          cfg.Topic,
			GroupID:        cfg.GroupID,
			MinBytes:       1,
			MaxBytes:       10e6,
			MaxWait:        time.Second,
			StartOffset:    kafka.LastOffset,
			CommitInterval: 0,
		})
	}

	return f, nil
}

func (f *KafkaFeed) Subscribe(ctx context.Context, handler service.AlertHandler) (service.Subscription, error) {
	reader := f.newReader()

	f.logger.Info("[Feed] Kafka consumer initialized",
		slog.Any("brokers", f.cfg.Brokers),
		slog.String("topic", f.cfg.Topic),
		slog.String("group_id", f.cfg.GroupID),
	)

	loopCtx, cancel := context.WithCancel(ctx)
	sub := newLoopSubscription(cancel, reader.Close)

	go func() {
		defer close(sub.done)
		f.consume(loopCtx, reader, handler)
	}()

	return sub, nil
}

func (f *KafkaFeed) consume(ctx context.Context, reader messageReader, handler service.AlertHandler) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			f.logger.Warn("[Feed] Kafka fetch failed", slog.Any("error", err))

			select {
			case <-ctx.Done():
				return
			case <-time.After(kafkaRetryDelay):
			}

			continue
		}

		dispatch(f.logger, "kafka", msg.Value, handler)

		// Commit after hand-off; a crash before this line redelivers the
		// event and the debouncer absorbs the duplicate.
		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			f.logger.Warn("[Feed] Kafka commit failed",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}
