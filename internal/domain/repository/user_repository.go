// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. Returning these instead of
// driver errors lets the application layer branch without knowing GORM.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email unique constraint is violated.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when the username unique constraint is violated.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserFilter narrows a user listing. Query matches username, name or email
// case-insensitively.
type UserFilter struct {
	Query  string
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List retrieves users matching the filter, newest first, plus the total
	// match count for pagination.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// Create persists a new user entity. The unique indexes on email and
	// username are the source of truth for uniqueness; violations surface as
	// ErrDuplicateEmail / ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SoftDelete marks a user as deleted without removing the record.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
