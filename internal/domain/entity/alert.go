package entity

import "time"

// Known alert types emitted by the monitoring devices.
const (
	AlertTypePanicSOS      = "panic_sos"
	AlertTypeFallDetected  = "fall_detected"
	AlertTypeVitalSigns    = "vital_signs"
	AlertTypeGeofence      = "geofence"
	AlertTypeDeviceOffline = "device_offline"
	AlertTypeInactivity    = "inactivity"
	AlertTypeMedication    = "medication"
)

// AlertEvent is a newly inserted alert record as seen on the change feed.
// Severity is kept as received; unknown values are classified downstream.
type AlertEvent struct {
	ID          string
	AlertType   string
	Severity    string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	SubjectID   string
	SubjectName string
}
