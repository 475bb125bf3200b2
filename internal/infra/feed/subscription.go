package feed

import (
	"context"
	"sync"
)

// loopSubscription stops a background receive loop and then releases the
// underlying connection.
type loopSubscription struct {
	cancel  context.CancelFunc
	done    chan struct{}
	release func() error

	once sync.Once
	err  error
}

func newLoopSubscription(cancel context.CancelFunc, release func() error) *loopSubscription {
	return &loopSubscription{
		cancel:  cancel,
		done:    make(chan struct{}),
		release: release,
	}
}

func (s *loopSubscription) Close() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		if s.release != nil {
			s.err = s.release()
		}
	})

	return s.err
}
