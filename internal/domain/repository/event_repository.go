// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"evently/internal/domain/entity"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDuplicateEventCode is returned when the event code unique constraint is violated.
	ErrDuplicateEventCode = errors.New("event code already exists")
)

// EventFilter narrows an event listing. Query matches title or description
// case-insensitively; the remaining fields are exact or range filters.
type EventFilter struct {
	Query     string
	Status    entity.EventStatus
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	// FindByCode retrieves a single event by its generated code.
	FindByCode(ctx context.Context, code string) (*entity.Event, error)

	// List retrieves events matching the filter, newest first, plus the
	// total match count for pagination.
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, int64, error)

	// Create persists a new event entity.
	Create(ctx context.Context, event *entity.Event) error

	// Update modifies an existing event entity in the storage.
	Update(ctx context.Context, event *entity.Event) error

	// DeleteByCode removes an event record entirely.
	DeleteByCode(ctx context.Context, code string) error
}
