package model

import "time"

// ElderlyPersonModel maps the monitored person columns alerts need.
type ElderlyPersonModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	FullName string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ElderlyPersonModel) TableName() string {
	return "elderly_persons"
}

// CaregiverAssignmentModel links a caregiver user to a monitored person.
type CaregiverAssignmentModel struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	CaregiverUserID string `gorm:"type:uuid;not null;index"`
	ElderlyPersonID string `gorm:"type:uuid;not null;index"`
	AssignmentType  string `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaregiverAssignmentModel) TableName() string {
	return "caregiver_assignments"
}
