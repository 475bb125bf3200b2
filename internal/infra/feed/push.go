package feed

import (
	"context"
	"log/slog"
	"sync"

	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

// ErrNoSubscriber is returned by Accept while nothing is subscribed.
var ErrNoSubscriber = errors.New("push feed has no subscriber")

// PushFeed receives alert events pushed over HTTP, e.g. a Pub/Sub push
// subscription or a database webhook. The HTTP handler calls Accept.
type PushFeed struct {
	logger *slog.Logger

	mu      sync.RWMutex
	handler service.AlertHandler
}

var _ service.AlertFeed = (*PushFeed)(nil)

func NewPushFeed(logger *slog.Logger) *PushFeed {
	return &PushFeed{logger: logger}
}

// Subscribe replaces any previous handler; a push feed has a single consumer.
func (f *PushFeed) Subscribe(_ context.Context, handler service.AlertHandler) (service.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.handler = handler

	return &pushSubscription{feed: f}, nil
}

// Accept decodes one pushed event. Events that cannot be decoded are
// reported through the returned error so the caller can acknowledge them.
func (f *PushFeed) Accept(data []byte) error {
	f.mu.RLock()
	handler := f.handler
	f.mu.RUnlock()

	if handler == nil {
		return ErrNoSubscriber
	}

	alert, err := decodeAlert(data)
	if err != nil {
		return err
	}

	handler(alert)

	return nil
}

type pushSubscription struct {
	feed *PushFeed
	once sync.Once
}

func (s *pushSubscription) Close() error {
	s.once.Do(func() {
		s.feed.mu.Lock()
		s.feed.handler = nil
		s.feed.mu.Unlock()
	})

	return nil
}
