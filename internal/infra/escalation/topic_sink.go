// Package escalation forwards critical alerts that reached nobody to a
// secondary channel.
package escalation

import (
	"context"
	"encoding/json"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

type pathReport struct {
	Status string `json:"status"`
	Via    string `json:"via,omitempty"`
	Error  string `json:"error,omitempty"`
}

type escalationMessage struct {
	NotificationID string            `json:"notificationId"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Priority       string            `json:"priority"`
	Recipients     []string          `json:"recipients"`
	Metadata       map[string]string `json:"metadata"`
	Push           pathReport        `json:"push"`
	Local          pathReport        `json:"local"`
	Haptic         pathReport        `json:"haptic"`
}

func newPathReport(o entity.PathOutcome) pathReport {
	r := pathReport{Status: string(o.Status), Via: o.Via}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}

	return r
}

// TopicSink publishes escalations to a gocloud.dev topic.
type TopicSink struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

var _ service.EscalationSink = (*TopicSink)(nil)

func NewTopicSink(topic *pubsub.Topic, logger *slog.Logger) *TopicSink {
	return &TopicSink{topic: topic, logger: logger}
}

func (s *TopicSink) Escalate(ctx context.Context, payload *entity.DeliveryPayload, result *entity.DeliveryResult) error {
	msg := escalationMessage{
		NotificationID: payload.NotificationID.String(),
		Title:          payload.Title,
		Body:           payload.Body,
		Priority:       string(payload.Priority),
		Recipients:     payload.Recipients,
		Metadata:       payload.Metadata,
	}
	if result != nil {
		msg.Push = newPathReport(result.Push)
		msg.Local = newPathReport(result.Local)
		msg.Haptic = newPathReport(result.Haptic)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.topic.Send(ctx, &pubsub.Message{
		Body: body,
		Metadata: map[string]string{
			"notification_id": msg.NotificationID,
			"alert_id":        payload.Metadata[entity.MetaAlertID],
			"priority":        msg.Priority,
		},
	})
	if err != nil {
		return errors.Wrap(err, "send escalation")
	}

	s.logger.Warn("[Escalation] Critical alert escalated",
		slog.String("notification_id", msg.NotificationID),
		slog.String("alert_id", payload.Metadata[entity.MetaAlertID]),
	)

	return nil
}

// logSink only logs; used when no topic is configured.
type logSink struct {
	logger *slog.Logger
}

func (s *logSink) Escalate(_ context.Context, payload *entity.DeliveryPayload, _ *entity.DeliveryResult) error {
	s.logger.Error("[Escalation] Critical alert reached no device and no escalation topic is configured",
		slog.String("notification_id", payload.NotificationID.String()),
		slog.String("alert_id", payload.Metadata[entity.MetaAlertID]),
	)

	return nil
}

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured escalation topic or falls back to logging.
func New(params Params) (service.EscalationSink, error) {
	url := params.Config.Escalation.TopicURL
	if url == "" {
		params.Logger.Info("Escalation topic not configured, critical failures will only be logged")

		return &logSink{logger: params.Logger}, nil
	}

	topic, err := pubsub.OpenTopic(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open escalation topic %s", url)
	}

	params.Logger.Info("Using escalation topic", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return topic.Shutdown(ctx)
		},
	})

	return NewTopicSink(topic, params.Logger), nil
}
