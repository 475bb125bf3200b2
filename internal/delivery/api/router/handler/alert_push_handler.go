package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"guardian/config"
	"guardian/internal/delivery/api/response"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/errors"
	"guardian/internal/infra/feed"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// AlertPushHandlerParams holds dependencies for AlertPushHandler, injected by Fx.
type AlertPushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Feed   *feed.PushFeed
}

// AlertPushHandler accepts alert inserts pushed by Pub/Sub or a database
// webhook and hands them to the push feed.
type AlertPushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	feed           *feed.PushFeed
}

func NewAlertPushHandler(params AlertPushHandlerParams) *AlertPushHandler {
	audience := ""
	if params.Config.Feed != nil {
		audience = params.Config.Feed.Push.Audience
	}

	return &AlertPushHandler{
		verifyPushAuth: params.Config.Env.Env != constants.EnvDevelop,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		feed:           params.Feed,
	}
}

// HandlePush answers 204 for every event that should not be redelivered,
// including ones that cannot be decoded, and 503 while the dispatcher is
// not subscribed so the sender retries.
func (h *AlertPushHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			logger.Warn("[Push] Invalid push token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid push token")
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable request body")
	}

	data, messageID, err := unwrapPushBody(body)
	if err != nil {
		logger.Warn("[Push] Dropping malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	if err := h.feed.Accept(data); err != nil {
		switch {
		case errors.Is(err, feed.ErrNoSubscriber):
			return response.ServiceUnavailable(c,
				domainerrors.ErrAlertFeedUnavailable.ErrorCode(),
				domainerrors.ErrAlertFeedUnavailable.Message(),
			)
		case errors.Is(err, feed.ErrNotInsert):
			logger.Debug("[Push] Ignoring non-insert change", slog.String("message_id", messageID))
		default:
			logger.Warn("[Push] Dropping undecodable alert event",
				slog.String("message_id", messageID),
				slog.Any("error", err),
			)
		}

		return c.NoContent(http.StatusNoContent)
	}

	return c.NoContent(http.StatusNoContent)
}

// unwrapPushBody returns the event carried by a Pub/Sub envelope, or the body
// itself when it is not one.
func unwrapPushBody(body []byte) ([]byte, string, error) {
	var envelope PubSubMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", errors.Wrap(err, "push body is not JSON")
	}

	if envelope.Message.Data == "" {
		return body, "", nil
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, envelope.Message.MessageID, errors.Wrap(err, "failed to decode message data")
	}

	return data, envelope.Message.MessageID, nil
}

// verifyPushToken checks the OIDC token Pub/Sub attaches to push requests.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *AlertPushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
