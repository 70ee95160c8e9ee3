// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// ListRemindersInput defines the paging parameters for reminder listing.
// Regular users only see their own reminders; admin-ranked accounts see all.
type ListRemindersInput struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

// CreateReminderInput defines the data required to create a reminder for an
// event. The authenticated caller becomes the owner.
type CreateReminderInput struct {
	EventCode    string    `json:"eventCode" validate:"required"`
	ReminderDate time.Time `json:"reminderDate" validate:"required"`
	Message      string    `json:"message,omitempty"`
}

// UpdateReminderInput defines the fields an owner or admin may change on a
// reminder. Nil fields are left untouched.
type UpdateReminderInput struct {
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
	Message      *string    `json:"message,omitempty"`
	Sent         *bool      `json:"sent,omitempty"`
}

// --- Output DTOs ---

// ReminderListOutput returns one page of reminders plus the total match count.
type ReminderListOutput struct {
	Reminders []*entity.Reminder `json:"reminders"`
	Count     int64              `json:"count"`
}

// ReminderUsecase defines the interface for reminder-related business operations.
type ReminderUsecase interface {
	// List retrieves a page of reminders visible to the acting account.
	List(ctx context.Context, actor *entity.User, input *ListRemindersInput) (*ReminderListOutput, error)

	// Create adds a new reminder owned by the acting account.
	Create(ctx context.Context, actor *entity.User, input *CreateReminderInput) (*entity.Reminder, error)

	// Update modifies a reminder; only the owner or an admin-ranked account may.
	Update(ctx context.Context, actor *entity.User, code string, input *UpdateReminderInput) (*entity.Reminder, error)

	// Delete soft-deletes a reminder; only the owner or an admin-ranked account may.
	Delete(ctx context.Context, actor *entity.User, code string) error
}
