package entity

import "slices"

// Features a device may announce to the gateway.
const (
	FeatureLocalNotifications = "local_notifications"
	FeatureHaptics            = "haptics"
	FeaturePushNotifications  = "push_notifications"
)

// DeviceCapabilities is the retained announcement a caregiver device publishes on connect.
type DeviceCapabilities struct {
	Native       bool     `json:"native"`
	Platform     string   `json:"platform"`
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
	OSVersion    string   `json:"osVersion"`
	Features     []string `json:"features"`
}

// Has reports whether the device is native and exposes the feature.
func (c *DeviceCapabilities) Has(feature string) bool {
	if c == nil || !c.Native {
		return false
	}

	return slices.Contains(c.Features, feature)
}

// Info extracts the device metadata stored alongside push tokens.
func (c *DeviceCapabilities) Info() DeviceInfo {
	if c == nil {
		return DeviceInfo{}
	}

	return DeviceInfo{
		Platform:     c.Platform,
		Model:        c.Model,
		Manufacturer: c.Manufacturer,
		OSVersion:    c.OSVersion,
	}
}
