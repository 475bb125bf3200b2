package entity

import "time"

// DeviceInfo describes the device a push token was issued to.
type DeviceInfo struct {
	Platform     string `json:"platform"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	OSVersion    string `json:"osVersion"`
}

// DeviceToken is a push endpoint registered for a user, unique on (UserID, Token).
type DeviceToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Token      string     `json:"token"`
	DeviceInfo DeviceInfo `json:"device_info"`
	LastUsedAt time.Time  `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
