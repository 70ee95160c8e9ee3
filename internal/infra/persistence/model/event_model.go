package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. The generated event code is the
// public identifier; the UUID primary key stays internal.
type EventModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key"`
	Code         string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	Title        string      `gorm:"type:varchar(255);not null"`
	Description  string      `gorm:"type:text;not null"`
	Date         time.Time   `gorm:"not null;index"`
	Location     string      `gorm:"type:varchar(255);index"`
	HostID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Host         *UserModel  `gorm:"foreignKey:HostID"`
	Visibility   string      `gorm:"type:varchar(16);not null;default:public"`
	Status       string      `gorm:"type:varchar(16);not null;default:scheduled;index"`
	AllowedUsers []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
