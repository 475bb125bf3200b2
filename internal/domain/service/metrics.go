package service

import (
	"time"

	"guardian/internal/domain/entity"
)

// PipelineMetrics records alert pipeline activity.
type PipelineMetrics interface {
	AlertReceived()
	AlertSuppressed()
	AlertDispatched(priority entity.PriorityClass, elapsed time.Duration)
	DeliveryOutcome(path string, outcome entity.PathOutcome)
	AlertEscalated()
}
