package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/errors"
	"guardian/internal/infra/feed"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newVerifyingPushHandler(t *testing.T, validate tokenValidator) (*AlertPushHandler, chan *entity.AlertEvent) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushFeed := feed.NewPushFeed(logger)
	received := make(chan *entity.AlertEvent, 4)
	_, err := pushFeed.Subscribe(context.Background(), func(alert *entity.AlertEvent) { received <- alert })
	require.NoError(t, err)

	cfg := &config.Config{Feed: &config.FeedConfig{}}
	cfg.Env.Env = "production"

	h := NewAlertPushHandler(AlertPushHandlerParams{Config: cfg, Logger: logger, Feed: pushFeed})
	h.validate = validate

	return h, received
}

func servePush(h *AlertPushHandler, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "http://guardian.test/v1/alerts/push", strings.NewReader(body))
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func pubSubBody(payload string) string {
	return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(payload)) +
		`","messageId":"m-1"},"subscription":"projects/p/subscriptions/s"}`
}

func TestAlertPushHandler_VerifiesPubSubToken(t *testing.T) {
	var gotAudience string
	h, received := newVerifyingPushHandler(t, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "oidc" {
			return nil, errors.New("signature mismatch")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	})

	body := pubSubBody(`{"id":42,"alert_type":"panic_sos","severity":"critical"}`)

	rec := servePush(h, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, "Bearer oidc")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://guardian.test/v1/alerts/push", gotAudience)

	alert := <-received
	assert.Equal(t, "42", alert.ID)
	assert.Equal(t, entity.AlertTypePanicSOS, alert.AlertType)
}

func TestAlertPushHandler_RejectsForeignIssuer(t *testing.T) {
	h, _ := newVerifyingPushHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example"}, nil
	})

	rec := servePush(h, pubSubBody(`{"id":"a"}`), "Bearer oidc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAlertPushHandler_ConfiguredAudience(t *testing.T) {
	var gotAudience string
	h, _ := newVerifyingPushHandler(t, func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
	})
	h.audience = "https://alerts.example.com/push"

	rec := servePush(h, pubSubBody(`{"id":"a"}`), "Bearer oidc")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://alerts.example.com/push", gotAudience)
}

func TestUnwrapPushBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      string
		wantMsgID string
		wantErr   bool
	}{
		{
			name:      "pubsub envelope",
			body:      pubSubBody(`{"id":"a"}`),
			want:      `{"id":"a"}`,
			wantMsgID: "m-1",
		},
		{
			name: "raw change envelope",
			body: `{"type":"INSERT","record":{"id":"a"}}`,
			want: `{"type":"INSERT","record":{"id":"a"}}`,
		},
		{
			name:    "bad base64",
			body:    `{"message":{"data":"%%%","messageId":"m-2"}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<xml/>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, msgID, err := unwrapPushBody([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
			assert.Equal(t, tt.wantMsgID, msgID)
		})
	}
}
