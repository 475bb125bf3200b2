package impl

import (
	"io"
	"log/slog"

	"guardian/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(fanOut bool) *config.Config {
	return &config.Config{
		Pipeline: &config.PipelineConfig{
			PrincipalID:        "caregiver-1",
			FanOutToCaregivers: fanOut,
		},
	}
}
