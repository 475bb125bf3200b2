package entity

import "time"

// NotificationChannel is a device-side channel declaration.
type NotificationChannel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Importance  int    `json:"importance"`
	Visibility  int    `json:"visibility"`
	Vibration   bool   `json:"vibration"`
	Sound       string `json:"sound,omitempty"`
}

// LocalNotification is scheduled on the caregiver's own device.
type LocalNotification struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	ChannelID  string            `json:"channelId"`
	Sound      string            `json:"sound,omitempty"`
	ScheduleAt time.Time         `json:"scheduleAt"`
	Extra      map[string]string `json:"extra,omitempty"`
}
