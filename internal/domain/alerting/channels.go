package alerting

import "guardian/internal/domain/entity"

// Channel ids declared on caregiver devices.
const (
	ChannelCritical   = "critical-alerts"
	ChannelHigh       = "high-priority"
	ChannelMedium     = "medium-priority"
	ChannelLow        = "low-priority"
	ChannelMedication = "medication-reminders"
	ChannelGeofence   = "geofence-alerts"
)

const (
	soundCritical   = "critical.wav"
	soundMedication = "medication.wav"

	visibilityPublic  = 1
	importanceMax     = 5
	importanceHigh    = 4
	importanceDefault = 3
	importanceLow     = 2
)

var channels = []entity.NotificationChannel{
	{
		ID:          ChannelCritical,
		Name:        "Critical Alerts",
		Description: "Critical health and safety alerts",
		Importance:  importanceMax,
		Visibility:  visibilityPublic,
		Vibration:   true,
		Sound:       soundCritical,
	},
	{
		ID:          ChannelHigh,
		Name:        "High Priority Alerts",
		Description: "High priority health alerts",
		Importance:  importanceHigh,
		Visibility:  visibilityPublic,
		Vibration:   true,
	},
	{
		ID:          ChannelMedium,
		Name:        "Medium Priority Alerts",
		Description: "Medium priority alerts",
		Importance:  importanceDefault,
		Visibility:  visibilityPublic,
		Vibration:   false,
	},
	{
		ID:          ChannelLow,
		Name:        "Low Priority Alerts",
		Description: "Low priority informational alerts",
		Importance:  importanceLow,
		Visibility:  visibilityPublic,
		Vibration:   false,
	},
	{
		ID:          ChannelMedication,
		Name:        "Medication Reminders",
		Description: "Reminders to take medication",
		Importance:  importanceHigh,
		Visibility:  visibilityPublic,
		Vibration:   true,
		Sound:       soundMedication,
	},
	{
		ID:          ChannelGeofence,
		Name:        "Geofence Alerts",
		Description: "Alerts when entering or leaving safe zones",
		Importance:  importanceMax,
		Visibility:  visibilityPublic,
		Vibration:   true,
	},
}

// Channels returns the fixed channel set declared once at startup.
func Channels() []entity.NotificationChannel {
	out := make([]entity.NotificationChannel, len(channels))
	copy(out, channels)

	return out
}

// ChannelFor picks the channel an alert is posted to. Medication and geofence
// alerts use their dedicated channels, everything else routes by priority.
func ChannelFor(alertType string, priority entity.PriorityClass) string {
	switch alertType {
	case entity.AlertTypeMedication:
		return ChannelMedication
	case entity.AlertTypeGeofence:
		return ChannelGeofence
	}

	switch priority {
	case entity.PriorityCritical:
		return ChannelCritical
	case entity.PriorityHigh:
		return ChannelHigh
	case entity.PriorityLow:
		return ChannelLow
	default:
		return ChannelMedium
	}
}

// SoundFor returns the custom sound of a channel, empty for the device default.
func SoundFor(channelID string) string {
	for _, ch := range channels {
		if ch.ID == channelID {
			return ch.Sound
		}
	}

	return ""
}
