// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// ListEventsInput defines the filter and paging parameters for event listing.
type ListEventsInput struct {
	Query     string     `query:"query"`
	Status    string     `query:"status"`
	Location  string     `query:"location"`
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	Offset    int        `query:"offset"`
	Limit     int        `query:"limit"`
}

// CreateEventInput defines the data required to create an event. The
// authenticated caller becomes the host.
type CreateEventInput struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Location     string    `json:"location,omitempty"`
	Visibility   string    `json:"visibility,omitempty" validate:"omitempty,oneof=public private"`
	AllowedUsers []string  `json:"allowedUsers,omitempty"`
}

// UpdateEventInput defines the fields a host or admin may change on an
// event. Nil fields are left untouched.
type UpdateEventInput struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
	Visibility   *string    `json:"visibility,omitempty" validate:"omitempty,oneof=public private"`
	AllowedUsers []string   `json:"allowedUsers,omitempty"`
}

// --- Output DTOs ---

// EventListOutput returns one page of events plus the total match count.
type EventListOutput struct {
	Events []*entity.Event `json:"events"`
	Count  int64           `json:"count"`
}

// EventUsecase defines the interface for event-related business operations.
type EventUsecase interface {
	// List retrieves a page of events matching the filter.
	List(ctx context.Context, input *ListEventsInput) (*EventListOutput, error)

	// Get retrieves a single event by its generated code.
	Get(ctx context.Context, code string) (*entity.Event, error)

	// Create adds a new event hosted by the acting account.
	Create(ctx context.Context, actor *entity.User, input *CreateEventInput) (*entity.Event, error)

	// Update modifies an event; only the host or an admin-ranked account may.
	Update(ctx context.Context, actor *entity.User, code string, input *UpdateEventInput) (*entity.Event, error)

	// Delete removes an event; only the host or an admin-ranked account may.
	Delete(ctx context.Context, actor *entity.User, code string) error
}
