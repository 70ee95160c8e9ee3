// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// The password hash is carried for authentication checks but is never
// serialized into any response payload.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"` // Derived from the name at registration, unique across all accounts.
	Email        string     `json:"email"`    // Login identifier, unique across non-deleted accounts.
	Name         string     `json:"name"`
	Bio          string     `json:"bio,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	Photo        string     `json:"photo,omitempty"`
	Locations    []string   `json:"locations,omitempty"`
	PasswordHash string     `json:"-"` // Set at creation, only ever replaced, never read back.
	Role         Role       `json:"role"`
	Deleted      bool       `json:"deleted"` // Soft-delete flag; deleted accounts stay in storage.
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsActive reports whether the account may still authenticate.
// Soft-deleted accounts fail login and token resolution.
func (u *User) IsActive() bool {
	return !u.Deleted
}
