// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderMessage is used when a reminder is created without one.
const DefaultReminderMessage = "Reminder for the event."

// Reminder represents a per-user notification scheduled before an event.
type Reminder struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"` // Generated human-readable identifier, e.g. "REM-1714089600000-A1B2C".
	EventID      uuid.UUID `json:"eventId"`
	UserID       uuid.UUID `json:"userId"` // The account this reminder belongs to.
	ReminderDate time.Time `json:"reminderDate"`
	Message      string    `json:"message"`
	Sent         bool      `json:"sent"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MutableBy reports whether the given account may modify or delete the
// reminder: the owner always may, and so may any admin-ranked account.
func (r *Reminder) MutableBy(actor *User) bool {
	if actor == nil {
		return false
	}
	if actor.ID == r.UserID {
		return true
	}

	return actor.Role.Rank() >= RoleAdmin.Rank()
}
