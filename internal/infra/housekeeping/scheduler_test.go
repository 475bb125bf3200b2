package housekeeping

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/infra/debounce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep(int64) int {
	c.calls.Add(1)

	return 1
}

func TestScheduler_RunsSweep(t *testing.T) {
	s, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Housekeeping: &config.HousekeepingConfig{SweepSpec: "@every 1h"}},
		Logger:    testLogger,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Jobs())

	sweeper := &countingSweeper{}
	require.NoError(t, s.AddSweep("@every 1s", sweeper))
	s.Start()
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestNew_RegistersSweepForMemoryDebouncer(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	s, err := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{Housekeeping: &config.HousekeepingConfig{SweepSpec: "@every 30s"}},
		Logger:    testLogger,
		Debouncer: debounce.NewMemory(5 * time.Second),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Jobs())

	lc.RequireStart()
	lc.RequireStop()
}

func TestAddSweep_InvalidSpec(t *testing.T) {
	s, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Housekeeping: &config.HousekeepingConfig{}},
		Logger:    testLogger,
	})
	require.NoError(t, err)

	assert.Error(t, s.AddSweep("every tuesday", &countingSweeper{}))
}
