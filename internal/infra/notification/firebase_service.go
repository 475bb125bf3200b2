package notification

import (
	"context"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the Firebase limit for a single multicast request.
const MaxMulticastTokens = 500

// apnsPriorityImmediate asks APNs to deliver the notification immediately.
const apnsPriorityImmediate = "10"

// multicastSender is the slice of *messaging.Client the push provider uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client  multicastSender
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Params defines the dependencies of the push provider
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase push provider, or a disabled provider when no
// credentials are configured.
func New(params Params) (service.PushProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("[Push] Firebase credentials not configured, remote push disabled")

		return NewNoopPushProvider(), nil
	}

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}

// NewFirebaseService creates a new Firebase push provider instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushProvider, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, newLimiter(cfg), logger), nil
}

func newFirebaseService(client multicastSender, limiter *rate.Limiter, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

func newLimiter(cfg *config.FirebaseConfig) *rate.Limiter {
	if cfg.RatePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1))
}

func (s *firebaseService) IsAvailable() bool {
	return s.client != nil
}

// SendMulticast sends one notification to up to 500 tokens
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *entity.PushMessage) (*entity.PushReport, error) {
	if len(tokens) == 0 {
		return &entity.PushReport{}, nil
	}

	if len(tokens) > MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "push rate limiter")
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &entity.PushReport{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse == nil || sendResponse.Error == nil {
			continue
		}

		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])

			continue
		}

		s.logger.Debug("[Push] Token send failed",
			slog.Int("index", idx),
			slog.Any("error", sendResponse.Error),
		)
	}

	return report, nil
}

func buildMulticast(tokens []string, msg *entity.PushMessage) *messaging.MulticastMessage {
	badge := 1

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			// Every class goes out as high so Doze does not hold it back.
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: msg.ChannelID,
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriorityImmediate},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: &badge,
					Sound: "default",
				},
			},
		},
	}
}
