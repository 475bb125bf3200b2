package alerting

import (
	"fmt"
	"strings"

	"guardian/internal/domain/entity"
)

// DefaultSubjectName is used whenever the monitored person's name is unknown.
const DefaultSubjectName = "Patient"

// Content is the user-facing text of a notification.
type Content struct {
	Title string
	Body  string
}

type template struct {
	title string
	// body formats the message; fallback is used when the description is empty.
	body     func(name, description string) string
	fallback string
}

func withDescription(name, description string) string {
	return fmt.Sprintf("%s: %s", name, description)
}

var templates = map[string]template{
	entity.AlertTypePanicSOS: {
		title: "🚨 PANIC SOS Alert!",
		body: func(name, _ string) string {
			return fmt.Sprintf("%s has pressed the emergency button. Immediate attention required!", name)
		},
	},
	entity.AlertTypeFallDetected: {
		title: "⚠️ Fall Detected!",
		body: func(name, _ string) string {
			return fmt.Sprintf("%s may have fallen. Please check immediately.", name)
		},
	},
	entity.AlertTypeVitalSigns: {
		title:    "❤️ Vital Signs Alert",
		body:     withDescription,
		fallback: "Abnormal vital signs detected",
	},
	entity.AlertTypeGeofence: {
		title:    "📍 Geofence Alert",
		body:     withDescription,
		fallback: "Has left the safe zone",
	},
	entity.AlertTypeDeviceOffline: {
		title:    "🔌 Device Offline",
		body:     withDescription,
		fallback: "Device is offline",
	},
	entity.AlertTypeInactivity: {
		title:    "😴 Inactivity Alert",
		body:     withDescription,
		fallback: "No activity detected",
	},
	entity.AlertTypeMedication: {
		title:    "💊 Medication Alert",
		body:     withDescription,
		fallback: "Medication reminder",
	},
}

// Synthesize renders title and body for an alert. It never fails and never
// returns an empty title or body, whatever the input.
func Synthesize(alert *entity.AlertEvent, subjectName string) Content {
	if alert == nil {
		alert = &entity.AlertEvent{}
	}

	name := strings.TrimSpace(subjectName)
	if name == "" {
		name = DefaultSubjectName
	}
	description := strings.TrimSpace(alert.Description)

	if tpl, ok := templates[alert.AlertType]; ok {
		if description == "" {
			description = tpl.fallback
		}

		return Content{Title: tpl.title, Body: tpl.body(name, description)}
	}

	return genericContent(alert, name, description)
}

func genericContent(alert *entity.AlertEvent, name, description string) Content {
	severity := strings.ToUpper(strings.TrimSpace(alert.Severity))
	if severity == "" {
		severity = strings.ToUpper(string(Classify(alert.Severity)))
	}

	detail := description
	if detail == "" {
		detail = strings.TrimSpace(alert.Title)
	}
	if detail == "" {
		detail = "New alert received"
	}

	return Content{
		Title: fmt.Sprintf("⚠️ %s Alert", severity),
		Body:  withDescription(name, detail),
	}
}
