package gateway

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

// Notifier schedules local notifications on the caregiver's native device.
type Notifier struct {
	client *Client
}

// NewNotifier returns the native local notification scheduler.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

var _ service.LocalNotifier = (*Notifier)(nil)

func (n *Notifier) Via() string { return entity.ViaNative }

func (n *Notifier) IsAvailable(_ context.Context, userID string) bool {
	return n.client.Enabled() && n.client.Capabilities(userID).Has(entity.FeatureLocalNotifications)
}

// DeclareChannels publishes the channel set retained so devices that connect later still get it.
func (n *Notifier) DeclareChannels(_ context.Context, userID string, channels []entity.NotificationChannel) error {
	return n.client.publish(n.client.topic(userID, topicChannels), true, channels)
}

func (n *Notifier) Schedule(_ context.Context, userID string, notification *entity.LocalNotification) error {
	return n.client.publish(n.client.topic(userID, topicSchedule), false, notification)
}
