// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusScheduled is the initial state of every event.
	EventStatusScheduled EventStatus = "scheduled"
	// EventStatusOngoing marks an event that is currently running.
	EventStatusOngoing EventStatus = "ongoing"
	// EventStatusCompleted marks an event that has finished.
	EventStatusCompleted EventStatus = "completed"
	// EventStatusCancelled marks an event that was called off.
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid checks if the EventStatus is a valid value.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusScheduled, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	default:
		return false
	}
}

// EventVisibility controls who can see an event.
type EventVisibility string

const (
	// EventVisibilityPublic makes the event visible to everyone.
	EventVisibilityPublic EventVisibility = "public"
	// EventVisibilityPrivate restricts the event to its allow-list.
	EventVisibilityPrivate EventVisibility = "private"
)

// IsValid checks if the EventVisibility is a valid value.
func (v EventVisibility) IsValid() bool {
	return v == EventVisibilityPublic || v == EventVisibilityPrivate
}

// Event represents a scheduled gathering hosted by an account.
type Event struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"` // Generated human-readable identifier, e.g. "EVT-1714089600000-A1B2C".
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Location     string          `json:"location,omitempty"`
	HostID       uuid.UUID       `json:"hostId"`
	Visibility   EventVisibility `json:"visibility"`
	Status       EventStatus     `json:"status"`
	AllowedUsers []uuid.UUID     `json:"allowedUsers,omitempty"` // Accounts allowed to see a private event.
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MutableBy reports whether the given account may modify or delete the
// event: the host always may, and so may any admin-ranked account.
func (e *Event) MutableBy(actor *User) bool {
	if actor == nil {
		return false
	}
	if actor.ID == e.HostID {
		return true
	}

	return actor.Role.Rank() >= RoleAdmin.Rank()
}
