package alerting

import (
	"strings"
	"testing"
	"time"

	"guardian/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		severity string
		want     entity.PriorityClass
	}{
		{"critical", entity.PriorityCritical},
		{"high", entity.PriorityHigh},
		{"medium", entity.PriorityMedium},
		{"low", entity.PriorityLow},
		{"  CRITICAL ", entity.PriorityCritical},
		{"High", entity.PriorityHigh},
		{"", entity.PriorityMedium},
		{"severe", entity.PriorityMedium},
		{"\x00garbage", entity.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.severity))
		})
	}
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, ChannelCritical, ChannelFor(entity.AlertTypeFallDetected, entity.PriorityCritical))
	assert.Equal(t, ChannelHigh, ChannelFor(entity.AlertTypeVitalSigns, entity.PriorityHigh))
	assert.Equal(t, ChannelMedium, ChannelFor("unknown", entity.PriorityMedium))
	assert.Equal(t, ChannelLow, ChannelFor(entity.AlertTypeDeviceOffline, entity.PriorityLow))
	assert.Equal(t, ChannelMedication, ChannelFor(entity.AlertTypeMedication, entity.PriorityLow))
	assert.Equal(t, ChannelGeofence, ChannelFor(entity.AlertTypeGeofence, entity.PriorityCritical))
}

func TestChannels_DeclaresFixedSet(t *testing.T) {
	got := Channels()

	ids := make([]string, 0, len(got))
	for _, ch := range got {
		ids = append(ids, ch.ID)
	}
	assert.Equal(t, []string{
		ChannelCritical, ChannelHigh, ChannelMedium, ChannelLow, ChannelMedication, ChannelGeofence,
	}, ids)

	// callers get a copy
	got[0].Name = "changed"
	assert.Equal(t, "Critical Alerts", Channels()[0].Name)

	assert.Equal(t, "critical.wav", SoundFor(ChannelCritical))
	assert.Equal(t, "medication.wav", SoundFor(ChannelMedication))
	assert.Empty(t, SoundFor(ChannelLow))
	assert.Empty(t, SoundFor("missing"))
}

func TestChannels_Attributes(t *testing.T) {
	want := []entity.NotificationChannel{
		{ID: "critical-alerts", Name: "Critical Alerts", Description: "Critical health and safety alerts", Importance: 5, Visibility: 1, Vibration: true, Sound: "critical.wav"},
		{ID: "high-priority", Name: "High Priority Alerts", Description: "High priority health alerts", Importance: 4, Visibility: 1, Vibration: true},
		{ID: "medium-priority", Name: "Medium Priority Alerts", Description: "Medium priority alerts", Importance: 3, Visibility: 1},
		{ID: "low-priority", Name: "Low Priority Alerts", Description: "Low priority informational alerts", Importance: 2, Visibility: 1},
		{ID: "medication-reminders", Name: "Medication Reminders", Description: "Reminders to take medication", Importance: 4, Visibility: 1, Vibration: true, Sound: "medication.wav"},
		{ID: "geofence-alerts", Name: "Geofence Alerts", Description: "Alerts when entering or leaving safe zones", Importance: 5, Visibility: 1, Vibration: true},
	}

	assert.Equal(t, want, Channels())
}

func TestSynthesize_KnownTypes(t *testing.T) {
	tests := []struct {
		name      string
		alert     entity.AlertEvent
		subject   string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "panic",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypePanicSOS, Severity: "critical"},
			subject:   "Ada",
			wantTitle: "🚨 PANIC SOS Alert!",
			wantBody:  "Ada has pressed the emergency button. Immediate attention required!",
		},
		{
			name:      "fall",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeFallDetected, Severity: "critical"},
			subject:   "Ada",
			wantTitle: "⚠️ Fall Detected!",
			wantBody:  "Ada may have fallen. Please check immediately.",
		},
		{
			name:      "vitals with description",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeVitalSigns, Description: "Heart rate 140 bpm"},
			subject:   "Ada",
			wantTitle: "❤️ Vital Signs Alert",
			wantBody:  "Ada: Heart rate 140 bpm",
		},
		{
			name:      "vitals fallback",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeVitalSigns},
			subject:   "Ada",
			wantTitle: "❤️ Vital Signs Alert",
			wantBody:  "Ada: Abnormal vital signs detected",
		},
		{
			name:      "geofence fallback",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeGeofence},
			subject:   "Ada",
			wantTitle: "📍 Geofence Alert",
			wantBody:  "Ada: Has left the safe zone",
		},
		{
			name:      "device offline fallback",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeDeviceOffline},
			subject:   "Ada",
			wantTitle: "🔌 Device Offline",
			wantBody:  "Ada: Device is offline",
		},
		{
			name:      "inactivity fallback",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeInactivity},
			subject:   "Ada",
			wantTitle: "😴 Inactivity Alert",
			wantBody:  "Ada: No activity detected",
		},
		{
			name:      "medication fallback",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeMedication},
			subject:   "Ada",
			wantTitle: "💊 Medication Alert",
			wantBody:  "Ada: Medication reminder",
		},
		{
			name:      "blank name",
			alert:     entity.AlertEvent{AlertType: entity.AlertTypeFallDetected},
			subject:   "   ",
			wantTitle: "⚠️ Fall Detected!",
			wantBody:  "Patient may have fallen. Please check immediately.",
		},
		{
			name:      "unknown type",
			alert:     entity.AlertEvent{AlertType: "unknown_sensor_fault", Severity: "low", Title: "Sensor fault"},
			subject:   "Ada",
			wantTitle: "⚠️ LOW Alert",
			wantBody:  "Ada: Sensor fault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(&tt.alert, tt.subject)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestSynthesize_IsTotal(t *testing.T) {
	inputs := []*entity.AlertEvent{
		nil,
		{},
		{AlertType: "x", Severity: ""},
		{AlertType: "x", Severity: "  "},
		{AlertType: "", Severity: "bogus", Description: ""},
	}

	for _, alert := range inputs {
		got := Synthesize(alert, "")
		assert.NotEmpty(t, strings.TrimSpace(got.Title))
		assert.NotEmpty(t, strings.TrimSpace(got.Body))
		assert.True(t, strings.HasPrefix(got.Body, DefaultSubjectName))
	}

	assert.Equal(t, "⚠️ MEDIUM Alert", Synthesize(&entity.AlertEvent{}, "").Title)
}

func TestPatternFor(t *testing.T) {
	critical := PatternFor(entity.PriorityCritical)
	assert.Equal(t, 3, critical.Pulses)
	assert.Equal(t, 500*time.Millisecond, critical.Duration)
	assert.Equal(t, []int{500, 200, 500, 200, 500}, critical.Sequence())

	assert.Equal(t, []int{300, 150, 300}, PatternFor(entity.PriorityHigh).Sequence())
	assert.Equal(t, []int{150, 100, 150}, PatternFor(entity.PriorityMedium).Sequence())
	assert.Equal(t, []int{100}, PatternFor(entity.PriorityLow).Sequence())
	assert.Equal(t, PatternFor(entity.PriorityMedium), PatternFor("unknown"))
}
