// Package alerting holds the pure rules that turn an alert into notification content:
// severity classification, channel routing, content templates and haptic patterns.
package alerting

import (
	"strings"

	"guardian/internal/domain/entity"
)

// Classify maps a raw severity to its priority class. Unknown, empty or
// malformed severities fall back to medium.
func Classify(severity string) entity.PriorityClass {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		return entity.PriorityCritical
	case "high":
		return entity.PriorityHigh
	case "medium":
		return entity.PriorityMedium
	case "low":
		return entity.PriorityLow
	default:
		return entity.PriorityMedium
	}
}
