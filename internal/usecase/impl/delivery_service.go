package impl

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"guardian/internal/domain/alerting"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/usecase"

	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	pushBatchSize = 500

	pathPush   = "push"
	pathLocal  = "local"
	pathHaptic = "haptic"
)

var (
	// ErrNoRecipients is reported when a payload names nobody to notify.
	ErrNoRecipients = errors.New("payload has no recipients")
	// ErrNoDeviceTokens is reported when no recipient has a registered token.
	ErrNoDeviceTokens = errors.New("no device tokens registered for recipients")
	// ErrPushRejected is reported when the provider accepted no token.
	ErrPushRejected = errors.New("push provider rejected every token")
)

// DeliveryServiceParams holds dependencies for the delivery engine, injected by Fx
type DeliveryServiceParams struct {
	fx.In

	Logger     *slog.Logger
	Push       service.PushProvider
	TokenRepo  repository.DeviceTokenRepository
	Notifiers  []service.LocalNotifier
	Haptics    []service.HapticsProvider
	Escalation service.EscalationSink
	Metrics    service.PipelineMetrics `optional:"true"`
}

type deliveryService struct {
	logger     *slog.Logger
	push       service.PushProvider
	tokenRepo  repository.DeviceTokenRepository
	notifiers  []service.LocalNotifier
	haptics    []service.HapticsProvider
	escalation service.EscalationSink
	metrics    service.PipelineMetrics
}

// NewDeliveryService creates the delivery engine. Notifiers and haptics are
// tried in order and the first available one is used.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &deliveryService{
		logger:     params.Logger,
		push:       params.Push,
		tokenRepo:  params.TokenRepo,
		notifiers:  params.Notifiers,
		haptics:    params.Haptics,
		escalation: params.Escalation,
		metrics:    metrics,
	}
}

// DeclareChannels declares the static channel set on every notifier, whether
// or not the device is currently reachable.
func (s *deliveryService) DeclareChannels(ctx context.Context, userID string) error {
	channels := alerting.Channels()

	var errs []error
	for _, notifier := range s.notifiers {
		if err := notifier.DeclareChannels(ctx, userID, channels); err != nil {
			errs = append(errs, errors.Wrapf(err, "declare channels via %s", notifier.Via()))
		}
	}

	return errors.Join(errs...)
}

// Deliver runs push, local and haptic delivery concurrently.
func (s *deliveryService) Deliver(ctx context.Context, payload *entity.DeliveryPayload) *entity.DeliveryResult {
	result := &entity.DeliveryResult{NotificationID: payload.NotificationID}
	principal := payload.Principal()

	var wg sync.WaitGroup
	wg.Go(func() {
		result.Push = s.guard(pathPush, func() entity.PathOutcome { return s.deliverPush(ctx, payload) })
	})
	wg.Go(func() {
		result.Local = s.guard(pathLocal, func() entity.PathOutcome { return s.deliverLocal(ctx, principal, payload) })
	})
	wg.Go(func() {
		result.Haptic = s.guard(pathHaptic, func() entity.PathOutcome { return s.playHaptics(ctx, principal, payload.Priority) })
	})
	wg.Wait()

	s.metrics.DeliveryOutcome(pathPush, result.Push)
	s.metrics.DeliveryOutcome(pathLocal, result.Local)
	s.metrics.DeliveryOutcome(pathHaptic, result.Haptic)

	if payload.Priority == entity.PriorityCritical && !result.Notified() {
		s.escalate(ctx, payload, result)
	}

	return result
}

// guard turns a panic on one path into a failed outcome for that path only.
func (s *deliveryService) guard(path string, fn func() entity.PathOutcome) (outcome entity.PathOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Delivery path panicked", slog.String("path", path), slog.Any("panic", r))
			outcome = entity.PathOutcome{
				Status: entity.DeliveryFailed,
				Via:    entity.ViaNone,
				Err:    errors.Errorf("%s delivery panicked: %v", path, r),
			}
		}
	}()

	return fn()
}

func (s *deliveryService) escalate(ctx context.Context, payload *entity.DeliveryPayload, result *entity.DeliveryResult) {
	s.metrics.AlertEscalated()

	if err := s.escalation.Escalate(ctx, payload, result); err != nil {
		s.logger.Error("Failed to escalate undelivered critical alert",
			slog.String("notification_id", payload.NotificationID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *deliveryService) deliverPush(ctx context.Context, payload *entity.DeliveryPayload) entity.PathOutcome {
	if !s.push.IsAvailable() {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone}
	}
	if len(payload.Recipients) == 0 {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone, Err: ErrNoRecipients}
	}

	deviceTokens, err := s.tokenRepo.FindByUserIDs(ctx, payload.Recipients)
	if err != nil {
		return entity.PathOutcome{
			Status: entity.DeliveryFailed,
			Via:    entity.ViaNative,
			Err:    errors.Wrap(err, "failed to get device tokens"),
		}
	}

	tokens := collectTokens(deviceTokens)
	if len(tokens) == 0 {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone, Err: ErrNoDeviceTokens}
	}

	msg := &entity.PushMessage{
		Title:     payload.Title,
		Body:      payload.Body,
		ChannelID: payload.ChannelID,
		Priority:  payload.Priority,
		Data:      pushData(payload),
	}

	outcome := entity.PathOutcome{Via: entity.ViaNative}
	var lastErr error

	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))
		batch := tokens[start:end]

		report, err := s.push.SendMulticast(ctx, batch, msg)
		if err != nil {
			s.logger.Error("Failed to send push batch",
				slog.String("notification_id", payload.NotificationID.String()),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			outcome.Failed += len(batch)
			lastErr = err

			continue
		}

		outcome.Sent += report.SuccessCount
		outcome.Failed += report.FailureCount
		outcome.InvalidTokens = append(outcome.InvalidTokens, report.InvalidTokens...)
	}

	// Invalid tokens are reported only; the registry keeps them until the
	// client re-registers.
	if len(outcome.InvalidTokens) > 0 {
		s.logger.Warn("Push provider reported invalid tokens",
			slog.String("notification_id", payload.NotificationID.String()),
			slog.Int("count", len(outcome.InvalidTokens)),
		)
	}

	switch {
	case outcome.Sent > 0:
		outcome.Status = entity.DeliveryDelivered
	case lastErr != nil:
		outcome.Status = entity.DeliveryFailed
		outcome.Err = errors.Wrap(lastErr, "failed to send push")
	default:
		outcome.Status = entity.DeliveryFailed
		outcome.Err = ErrPushRejected
	}

	return outcome
}

func (s *deliveryService) deliverLocal(ctx context.Context, principal string, payload *entity.DeliveryPayload) entity.PathOutcome {
	if principal == "" {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone, Err: ErrNoRecipients}
	}

	var notifier service.LocalNotifier
	for _, candidate := range s.notifiers {
		if candidate.IsAvailable(ctx, principal) {
			notifier = candidate

			break
		}
	}
	if notifier == nil {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone}
	}

	err := notifier.Schedule(ctx, principal, &entity.LocalNotification{
		ID:         payload.NotificationID.String(),
		Title:      payload.Title,
		Body:       payload.Body,
		ChannelID:  payload.ChannelID,
		Sound:      alerting.SoundFor(payload.ChannelID),
		ScheduleAt: time.Now().UTC(),
		Extra:      maps.Clone(payload.Metadata),
	})
	if err != nil {
		s.logger.Error("Failed to schedule local notification",
			slog.String("notification_id", payload.NotificationID.String()),
			slog.String("via", notifier.Via()),
			slog.Any("error", err),
		)

		return entity.PathOutcome{Status: entity.DeliveryFailed, Via: notifier.Via(), Err: err}
	}

	return entity.PathOutcome{Status: entity.DeliveryDelivered, Via: notifier.Via()}
}

func (s *deliveryService) playHaptics(ctx context.Context, principal string, priority entity.PriorityClass) entity.PathOutcome {
	if principal == "" {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone, Err: ErrNoRecipients}
	}

	var haptics service.HapticsProvider
	for _, candidate := range s.haptics {
		if candidate.IsAvailable(ctx, principal) {
			haptics = candidate

			break
		}
	}
	if haptics == nil {
		return entity.PathOutcome{Status: entity.DeliverySkipped, Via: entity.ViaNone}
	}

	if err := haptics.Play(ctx, principal, alerting.PatternFor(priority)); err != nil {
		s.logger.Warn("Failed to play haptic pattern",
			slog.String("priority", string(priority)),
			slog.String("via", haptics.Via()),
			slog.Any("error", err),
		)

		return entity.PathOutcome{Status: entity.DeliveryFailed, Via: haptics.Via(), Err: err}
	}

	return entity.PathOutcome{Status: entity.DeliveryDelivered, Via: haptics.Via()}
}

// collectTokens deduplicates tokens shared by several recipients.
func collectTokens(deviceTokens []*entity.DeviceToken) []string {
	seen := make(map[string]struct{}, len(deviceTokens))
	tokens := make([]string, 0, len(deviceTokens))
	for _, dt := range deviceTokens {
		if dt == nil || dt.Token == "" {
			continue
		}
		if _, ok := seen[dt.Token]; ok {
			continue
		}
		seen[dt.Token] = struct{}{}
		tokens = append(tokens, dt.Token)
	}

	return tokens
}

func pushData(payload *entity.DeliveryPayload) map[string]string {
	data := make(map[string]string, len(payload.Metadata)+2)
	maps.Copy(data, payload.Metadata)
	data["notificationId"] = payload.NotificationID.String()
	data["priority"] = string(payload.Priority)

	return data
}

// nopMetrics is used when no metrics backend is wired.
type nopMetrics struct{}

func (nopMetrics) AlertReceived() {}

func (nopMetrics) AlertSuppressed() {}

func (nopMetrics) AlertDispatched(entity.PriorityClass, time.Duration) {}

func (nopMetrics) DeliveryOutcome(string, entity.PathOutcome) {}

func (nopMetrics) AlertEscalated() {}
