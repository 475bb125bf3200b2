package model

import (
	"time"

	"gorm.io/datatypes"
)

// DeviceInfoJSON is the jsonb payload stored in fcm_tokens.device_info.
type DeviceInfoJSON struct {
	Platform     string `json:"platform"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	OSVersion    string `json:"osVersion"`
}

// DeviceTokenModel is the GORM-specific struct for the 'fcm_tokens' table.
// (user_id, token) is unique; the id is assigned by the repository.
type DeviceTokenModel struct {
	ID         string                             `gorm:"type:uuid;primaryKey"`
	UserID     string                             `gorm:"type:uuid;not null;uniqueIndex:idx_fcm_tokens_user_token"`
	Token      string                             `gorm:"type:text;not null;uniqueIndex:idx_fcm_tokens_user_token"`
	DeviceInfo datatypes.JSONType[DeviceInfoJSON] `gorm:"type:jsonb"`
	LastUsedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "fcm_tokens"
}
