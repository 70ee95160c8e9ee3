// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderFilter narrows a reminder listing. A nil UserID lists reminders
// for all accounts (admin view); otherwise only the given account's.
type ReminderFilter struct {
	UserID *uuid.UUID
	Offset int
	Limit  int
}

// ReminderRepository defines the standard operations for reminder persistence.
type ReminderRepository interface {
	// FindByCode retrieves a single reminder by its generated code.
	FindByCode(ctx context.Context, code string) (*entity.Reminder, error)

	// List retrieves reminders matching the filter, newest first, plus the
	// total match count for pagination.
	List(ctx context.Context, filter ReminderFilter) ([]*entity.Reminder, int64, error)

	// Create persists a new reminder entity.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// Update modifies an existing reminder entity in the storage.
	Update(ctx context.Context, reminder *entity.Reminder) error

	// SoftDeleteByCode marks a reminder as deleted without removing the record.
	SoftDeleteByCode(ctx context.Context, code string) error
}
