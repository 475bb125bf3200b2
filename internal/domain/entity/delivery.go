package entity

import (
	"github.com/google/uuid"
)

// PriorityClass drives channel routing and haptic escalation.
type PriorityClass string

const (
	PriorityCritical PriorityClass = "critical"
	PriorityHigh     PriorityClass = "high"
	PriorityMedium   PriorityClass = "medium"
	PriorityLow      PriorityClass = "low"
)

// Metadata keys attached to every delivery.
const (
	MetaAlertID   = "alertId"
	MetaAlertType = "alertType"
	MetaSubjectID = "subjectId"
	MetaSeverity  = "severity"
	MetaTimestamp = "timestamp"
)

// DeliveryPayload is built once per processed alert and handed to every delivery path.
type DeliveryPayload struct {
	NotificationID uuid.UUID
	Title          string
	Body           string
	Priority       PriorityClass
	ChannelID      string
	Metadata       map[string]string

	// Recipients lists the users whose registered tokens receive the push.
	// The first entry is the principal whose own device gets local and haptic delivery.
	Recipients []string
}

// Principal returns the user whose device is targeted by local delivery.
func (p *DeliveryPayload) Principal() string {
	if len(p.Recipients) == 0 {
		return ""
	}

	return p.Recipients[0]
}

type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliverySkipped   DeliveryStatus = "skipped"
)

// Implementation that carried a path.
const (
	ViaNative = "native"
	ViaWeb    = "web"
	ViaNone   = "none"
)

// PathOutcome records what happened on one delivery path.
type PathOutcome struct {
	Status DeliveryStatus
	Via    string
	Err    error

	// Push only
	Sent          int
	Failed        int
	InvalidTokens []string
}

// Delivered reports whether the path reached at least one device.
func (o PathOutcome) Delivered() bool {
	return o.Status == DeliveryDelivered
}

// DeliveryResult is the per-path report of a single Deliver call.
type DeliveryResult struct {
	NotificationID uuid.UUID
	Push           PathOutcome
	Local          PathOutcome
	Haptic         PathOutcome
}

// Notified reports whether any notification (push or local) reached a device.
func (r *DeliveryResult) Notified() bool {
	return r.Push.Delivered() || r.Local.Delivered()
}
