package escalation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTopicSink_Escalate(t *testing.T) {
	ctx := context.Background()
	topic := mempubsub.NewTopic()
	defer topic.Shutdown(ctx)
	sub := mempubsub.NewSubscription(topic, time.Minute)
	defer sub.Shutdown(ctx)

	id := uuid.New()
	payload := &entity.DeliveryPayload{
		NotificationID: id,
		Title:          "🚨 EMERGENCY SOS",
		Body:           "Ada pressed the panic button!",
		Priority:       entity.PriorityCritical,
		Recipients:     []string{"caregiver-1"},
		Metadata:       map[string]string{entity.MetaAlertID: "a-1"},
	}
	result := &entity.DeliveryResult{
		NotificationID: id,
		Push:           entity.PathOutcome{Status: entity.DeliveryFailed, Err: errors.New("no tokens")},
		Local:          entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone},
		Haptic:         entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone},
	}

	require.NoError(t, NewTopicSink(topic, testLogger).Escalate(ctx, payload, result))

	recvCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	msg, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "a-1", msg.Metadata["alert_id"])
	assert.Equal(t, "critical", msg.Metadata["priority"])

	var got escalationMessage
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, id.String(), got.NotificationID)
	assert.Equal(t, "failed", got.Push.Status)
	assert.Equal(t, "no tokens", got.Push.Error)
	assert.Equal(t, "skipped", got.Local.Status)
}

func TestLogSink_NeverFails(t *testing.T) {
	sink := &logSink{logger: testLogger}

	assert.NoError(t, sink.Escalate(context.Background(), &entity.DeliveryPayload{}, nil))
}

func newParams(t *testing.T, topicURL string) (Params, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Escalation: &config.EscalationConfig{TopicURL: topicURL}},
		Logger: testLogger,
	}, lc
}

func TestNew_PublishesToConfiguredTopic(t *testing.T) {
	ctx := context.Background()
	params, lc := newParams(t, "mem://guardian-escalations")

	sink, err := New(params)
	require.NoError(t, err)
	require.IsType(t, &TopicSink{}, sink)
	lc.RequireStart()
	defer lc.RequireStop()

	sub, err := pubsub.OpenSubscription(ctx, "mem://guardian-escalations")
	require.NoError(t, err)
	defer sub.Shutdown(ctx)

	payload := &entity.DeliveryPayload{
		NotificationID: uuid.New(),
		Title:          "⚠️ Fall Detected!",
		Priority:       entity.PriorityCritical,
		Metadata:       map[string]string{entity.MetaAlertID: "a-9"},
	}
	require.NoError(t, sink.Escalate(ctx, payload, nil))

	recvCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	msg, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "a-9", msg.Metadata["alert_id"])
	assert.Equal(t, payload.NotificationID.String(), msg.Metadata["notification_id"])
}

func TestNew_EmptyURLLogsOnly(t *testing.T) {
	params, _ := newParams(t, "")

	sink, err := New(params)
	require.NoError(t, err)
	assert.IsType(t, &logSink{}, sink)
}

func TestNew_UnknownSchemeFails(t *testing.T) {
	params, _ := newParams(t, "nosuchdriver://escalations")

	_, err := New(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchdriver://escalations")
}

func TestNew_GooglePubSubSchemeRegistered(t *testing.T) {
	mux := pubsub.DefaultURLMux()

	assert.True(t, mux.ValidTopicScheme("gcppubsub"))
	assert.True(t, mux.ValidTopicScheme("mem"))
}
