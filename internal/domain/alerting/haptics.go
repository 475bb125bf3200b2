package alerting

import (
	"time"

	"guardian/internal/domain/entity"
)

var patterns = map[entity.PriorityClass]entity.HapticPattern{
	entity.PriorityCritical: {Pulses: 3, Duration: 500 * time.Millisecond, Gap: 200 * time.Millisecond},
	entity.PriorityHigh:     {Pulses: 2, Duration: 300 * time.Millisecond, Gap: 150 * time.Millisecond},
	entity.PriorityMedium:   {Pulses: 2, Duration: 150 * time.Millisecond, Gap: 100 * time.Millisecond},
	entity.PriorityLow:      {Pulses: 1, Duration: 100 * time.Millisecond},
}

// PatternFor returns the vibration escalation for a priority class.
func PatternFor(priority entity.PriorityClass) entity.HapticPattern {
	if p, ok := patterns[priority]; ok {
		return p
	}

	return patterns[entity.PriorityMedium]
}
