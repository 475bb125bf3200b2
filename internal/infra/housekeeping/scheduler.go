// Package housekeeping runs periodic maintenance jobs.
package housekeeping

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler owns the cron runner.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	jobs   int
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Debouncer service.Debouncer
}

// New registers the debounce sweep when the debouncer keeps entries in memory.
func New(params Params) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
			cron.WithLocation(time.UTC),
		),
		logger: params.Logger,
	}

	if sweeper, ok := params.Debouncer.(service.Sweeper); ok {
		if err := s.AddSweep(params.Config.Housekeeping.SweepSpec, sweeper); err != nil {
			return nil, err
		}
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})

	return s, nil
}

// AddSweep schedules sweeper at spec.
func (s *Scheduler) AddSweep(spec string, sweeper service.Sweeper) error {
	_, err := s.cron.AddFunc(spec, func() {
		dropped := sweeper.Sweep(time.Now().UnixMilli())
		if dropped > 0 {
			s.logger.Debug("[Housekeeping] Debounce entries swept", slog.Int("dropped", dropped))
		}
	})
	if err != nil {
		return errors.Wrapf(err, "invalid sweep schedule %q", spec)
	}
	s.jobs++

	return nil
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int { return s.jobs }

func (s *Scheduler) Start() {
	if s.jobs == 0 {
		return
	}
	s.cron.Start()
	s.logger.Info("[Housekeeping] Scheduler started", slog.Int("jobs", s.jobs))
}

// Stop waits for running jobs or until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.jobs == 0 {
		return nil
	}

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
