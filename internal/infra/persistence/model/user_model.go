// Package model contains the GORM persistence models mirroring the database
// schema. They are mapped to and from pure domain entities at the repository
// boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and username uniqueness is
// enforced by the database, not by application-level checks.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	Username     string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Bio          string     `gorm:"type:text"`
	Birthdate    *time.Time `gorm:"type:date"`
	Photo        string     `gorm:"type:varchar(512)"`
	Locations    []string   `gorm:"serializer:json;type:jsonb"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(32);not null;default:user"`
	Deleted      bool       `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
