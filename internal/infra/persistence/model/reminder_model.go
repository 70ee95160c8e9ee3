package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminders' table.
type ReminderModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key"`
	Code         string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	EventID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Event        *EventModel `gorm:"foreignKey:EventID"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	User         *UserModel  `gorm:"foreignKey:UserID"`
	ReminderDate time.Time   `gorm:"not null;index"`
	Message      string      `gorm:"type:text"`
	Sent         bool        `gorm:"not null;default:false"`
	Deleted      bool        `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
