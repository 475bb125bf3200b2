package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/alerting"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const subscribeRetryInterval = 5 * time.Second

// DispatcherServiceParams holds dependencies for the alert dispatcher, injected by Fx
type DispatcherServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Feed      service.AlertFeed
	Debouncer service.Debouncer
	Subjects  repository.SubjectRepository
	Delivery  usecase.DeliveryUsecase
	Registry  usecase.TokenRegistryUsecase
	Metrics   service.PipelineMetrics `optional:"true"`
}

type dispatcherService struct {
	logger     *slog.Logger
	feed       service.AlertFeed
	debouncer  service.Debouncer
	subjects   repository.SubjectRepository
	delivery   usecase.DeliveryUsecase
	registry   usecase.TokenRegistryUsecase
	metrics    service.PipelineMetrics
	fanOut     bool
	now        func() time.Time
	retryEvery time.Duration

	mu        sync.Mutex
	running   bool
	principal string
	runCtx    context.Context
	cancel    context.CancelFunc
	sub       service.Subscription
	inflight  sync.WaitGroup
}

// NewDispatcherService creates the alert dispatcher
func NewDispatcherService(params DispatcherServiceParams) usecase.AlertDispatcher {
	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	fanOut := false
	if params.Config != nil && params.Config.Pipeline != nil {
		fanOut = params.Config.Pipeline.FanOutToCaregivers
	}

	return &dispatcherService{
		logger:     params.Logger,
		feed:       params.Feed,
		debouncer:  params.Debouncer,
		subjects:   params.Subjects,
		delivery:   params.Delivery,
		registry:   params.Registry,
		metrics:    metrics,
		fanOut:     fanOut,
		now:        time.Now,
		retryEvery: subscribeRetryInterval,
	}
}

// Start declares channels, then registers the principal's device and
// subscribes to the feed in the background. The dispatcher outlives ctx's
// deadline.
func (s *dispatcherService) Start(ctx context.Context, principalID string) error {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		s.logger.Warn("No principal configured, alert dispatcher not started")

		return nil
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return nil
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.running = true
	s.principal = principalID
	s.runCtx = runCtx
	s.cancel = cancel
	s.inflight.Add(2)
	s.mu.Unlock()

	logger := s.logger.With(slog.String("principal_id", principalID))

	if err := s.delivery.DeclareChannels(runCtx, principalID); err != nil {
		logger.Warn("Failed to declare notification channels", slog.Any("error", err))
	}

	go func() {
		defer s.inflight.Done()
		s.registry.RegisterToken(runCtx, principalID)
	}()
	go s.subscribe(runCtx, logger)

	logger.Info("Alert dispatcher started", slog.Bool("fan_out", s.fanOut))

	return nil
}

// subscribe keeps trying the feed until it accepts the subscription or the
// dispatcher stops. An unreachable feed never fails Start.
func (s *dispatcherService) subscribe(ctx context.Context, logger *slog.Logger) {
	defer s.inflight.Done()

	for attempt := 1; ; attempt++ {
		sub, err := s.feed.Subscribe(ctx, s.onAlert)
		if err == nil {
			s.mu.Lock()
			if ctx.Err() != nil {
				// Stopped while subscribing.
				s.mu.Unlock()
				_ = sub.Close()

				return
			}
			s.sub = sub
			s.mu.Unlock()

			logger.Info("Subscribed to alert feed", slog.Int("attempt", attempt))

			return
		}

		logger.Warn("Failed to subscribe to alert feed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", s.retryEvery),
			slog.Any("error", err),
		)

		timer := time.NewTimer(s.retryEvery)
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}

// Stop closes the subscription and waits for in-flight alerts to finish.
func (s *dispatcherService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}
	s.running = false
	sub := s.sub
	s.sub = nil
	// Cancelled under the lock so a subscription landing now is closed by subscribe.
	s.cancel()
	s.mu.Unlock()

	if sub != nil {
		if err := sub.Close(); err != nil {
			s.logger.Warn("Failed to close alert subscription", slog.Any("error", err))
		}
	}
	s.inflight.Wait()

	s.logger.Info("Alert dispatcher stopped")
}

// onAlert hands the event to its own goroutine so the feed loop never waits
// on delivery.
func (s *dispatcherService) onAlert(alert *entity.AlertEvent) {
	receivedAt := s.now()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}
	s.inflight.Add(1)
	ctx := s.runCtx
	principal := s.principal
	s.mu.Unlock()

	go func() {
		defer s.inflight.Done()
		s.process(ctx, principal, alert, receivedAt)
	}()
}

func (s *dispatcherService) process(ctx context.Context, principal string, alert *entity.AlertEvent, receivedAt time.Time) {
	if alert == nil || strings.TrimSpace(alert.ID) == "" {
		s.logger.Debug("Ignoring alert event without id")

		return
	}

	s.metrics.AlertReceived()
	logger := s.logger.With(slog.String("alert_id", alert.ID))

	if !s.debouncer.ShouldProcess(ctx, alert.ID, receivedAt.UnixMilli()) {
		s.metrics.AlertSuppressed()
		logger.Debug("Alert suppressed by debounce window")

		return
	}

	priority := alerting.Classify(alert.Severity)
	content := alerting.Synthesize(alert, s.subjectName(ctx, alert))

	payload := &entity.DeliveryPayload{
		NotificationID: uuid.New(),
		Title:          content.Title,
		Body:           content.Body,
		Priority:       priority,
		ChannelID:      alerting.ChannelFor(alert.AlertType, priority),
		Metadata:       alertMetadata(alert, receivedAt),
		Recipients:     s.recipients(ctx, principal, alert.SubjectID),
	}

	result := s.delivery.Deliver(ctx, payload)
	s.metrics.AlertDispatched(priority, s.now().Sub(receivedAt))

	logger.Info("Alert dispatched",
		slog.String("notification_id", payload.NotificationID.String()),
		slog.String("priority", string(priority)),
		slog.String("channel_id", payload.ChannelID),
		slog.Int("recipients", len(payload.Recipients)),
		slog.String("push", string(result.Push.Status)),
		slog.String("local", string(result.Local.Status)),
		slog.String("haptic", string(result.Haptic.Status)),
	)
}

// subjectName prefers the denormalized name on the event. An empty result
// makes content synthesis fall back to a generic name.
func (s *dispatcherService) subjectName(ctx context.Context, alert *entity.AlertEvent) string {
	if name := strings.TrimSpace(alert.SubjectName); name != "" {
		return name
	}
	if alert.SubjectID == "" {
		return ""
	}

	name, err := s.subjects.FindSubjectName(ctx, alert.SubjectID)
	if err != nil {
		s.logger.Debug("Subject name lookup failed",
			slog.String("subject_id", alert.SubjectID),
			slog.Any("error", err),
		)

		return ""
	}

	return name
}

// recipients returns the principal first, then assigned caregivers when fan-out is on.
func (s *dispatcherService) recipients(ctx context.Context, principal, subjectID string) []string {
	recipients := []string{principal}
	if !s.fanOut || subjectID == "" {
		return recipients
	}

	caregivers, err := s.subjects.FindCaregiverIDs(ctx, subjectID)
	if err != nil {
		s.logger.Warn("Failed to load caregivers, notifying principal only",
			slog.String("subject_id", subjectID),
			slog.Any("error", err),
		)

		return recipients
	}

	seen := map[string]struct{}{principal: {}}
	for _, id := range caregivers {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients
}

func alertMetadata(alert *entity.AlertEvent, receivedAt time.Time) map[string]string {
	ts := alert.CreatedAt
	if ts.IsZero() {
		ts = receivedAt
	}

	return map[string]string{
		entity.MetaAlertID:   alert.ID,
		entity.MetaAlertType: alert.AlertType,
		entity.MetaSubjectID: alert.SubjectID,
		entity.MetaSeverity:  alert.Severity,
		entity.MetaTimestamp: ts.UTC().Format(time.RFC3339),
	}
}
