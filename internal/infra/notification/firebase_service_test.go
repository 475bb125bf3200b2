package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"guardian/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeSender struct {
	got      *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

func newTestFirebase(sender multicastSender) *firebaseService {
	return newFirebaseService(sender, rate.NewLimiter(rate.Inf, 0), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFirebaseService_SendMulticast_BuildsAlertMessage(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: false, Error: errors.New("quota exceeded")},
		},
	}}
	svc := newTestFirebase(sender)

	report, err := svc.SendMulticast(context.Background(), []string{"a", "b"}, &entity.PushMessage{
		Title:     "⚠️ Fall Detected!",
		Body:      "Ada may have fallen. Please check immediately.",
		ChannelID: "critical-alerts",
		Priority:  entity.PriorityCritical,
		Data:      map[string]string{"alertId": "a1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Empty(t, report.InvalidTokens)

	require.NotNil(t, sender.got)
	assert.Equal(t, []string{"a", "b"}, sender.got.Tokens)
	assert.Equal(t, "high", sender.got.Android.Priority)
	assert.Equal(t, "critical-alerts", sender.got.Android.Notification.ChannelID)
	assert.Equal(t, "10", sender.got.APNS.Headers["apns-priority"])
	assert.Equal(t, 1, *sender.got.APNS.Payload.Aps.Badge)
	assert.Equal(t, "a1", sender.got.Data["alertId"])
}

func TestFirebaseService_SendMulticast_AlwaysHighPriority(t *testing.T) {
	for _, priority := range []entity.PriorityClass{entity.PriorityMedium, entity.PriorityLow} {
		t.Run(string(priority), func(t *testing.T) {
			sender := &fakeSender{response: &messaging.BatchResponse{SuccessCount: 1, Responses: []*messaging.SendResponse{{Success: true}}}}
			svc := newTestFirebase(sender)

			_, err := svc.SendMulticast(context.Background(), []string{"a"}, &entity.PushMessage{Priority: priority, ChannelID: "low-priority"})
			require.NoError(t, err)
			assert.Equal(t, "high", sender.got.Android.Priority)
			assert.Equal(t, "default", sender.got.Android.Notification.Sound)
			assert.Equal(t, "low-priority", sender.got.Android.Notification.ChannelID)
		})
	}
}

func TestFirebaseService_SendMulticast_Limits(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestFirebase(sender)

	report, err := svc.SendMulticast(context.Background(), nil, &entity.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, report.SuccessCount)
	assert.Nil(t, sender.got)

	_, err = svc.SendMulticast(context.Background(), make([]string, MaxMulticastTokens+1), &entity.PushMessage{})
	require.Error(t, err)
}

func TestFirebaseService_SendMulticast_ProviderError(t *testing.T) {
	svc := newTestFirebase(&fakeSender{err: errors.New("unavailable")})

	_, err := svc.SendMulticast(context.Background(), []string{"a"}, &entity.PushMessage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestNoopPushProvider(t *testing.T) {
	provider := NewNoopPushProvider()
	assert.False(t, provider.IsAvailable())

	report, err := provider.SendMulticast(context.Background(), []string{"a", "b"}, &entity.PushMessage{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.FailureCount)
}
