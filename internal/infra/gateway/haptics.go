package gateway

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

type vibrateCommand struct {
	Pattern    []int `json:"pattern"`
	Pulses     int   `json:"pulses"`
	DurationMs int64 `json:"durationMs"`
	GapMs      int64 `json:"gapMs"`
}

// Haptics plays vibration patterns on the caregiver's native device.
type Haptics struct {
	client *Client
}

// NewHaptics returns the native haptics provider.
func NewHaptics(client *Client) *Haptics {
	return &Haptics{client: client}
}

var _ service.HapticsProvider = (*Haptics)(nil)

func (h *Haptics) Via() string { return entity.ViaNative }

func (h *Haptics) IsAvailable(_ context.Context, userID string) bool {
	return h.client.Enabled() && h.client.Capabilities(userID).Has(entity.FeatureHaptics)
}

func (h *Haptics) Play(_ context.Context, userID string, pattern entity.HapticPattern) error {
	return h.client.publish(h.client.topic(userID, topicVibrate), false, vibrateCommand{
		Pattern:    pattern.Sequence(),
		Pulses:     pattern.Pulses,
		DurationMs: pattern.Duration.Milliseconds(),
		GapMs:      pattern.Gap.Milliseconds(),
	})
}
