// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// ListUsersInput defines the paging and search parameters for user listing.
type ListUsersInput struct {
	Query  string `query:"query"`
	Offset int    `query:"offset"`
	Limit  int    `query:"limit"`
}

// CreateUserInput defines the data an admin supplies to create an account.
type CreateUserInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role,omitempty"`
}

// EditUserInput defines the fields an authorized caller may change on a
// target account. Nil fields are left untouched.
type EditUserInput struct {
	Name      *string      `json:"name,omitempty"`
	Email     *string      `json:"email,omitempty" validate:"omitempty,email"`
	Bio       *string      `json:"bio,omitempty"`
	Birthdate *time.Time   `json:"birthdate,omitempty"`
	Photo     *string      `json:"photo,omitempty"`
	Locations []string     `json:"locations,omitempty"`
	Role      *entity.Role `json:"role,omitempty"`
}

// --- Output DTOs ---

// UserListOutput returns one page of users plus the total match count.
type UserListOutput struct {
	Users []*entity.User `json:"users"`
	Count int64          `json:"count"`
}

// UserUsecase defines the interface for user administration operations.
// Every mutation consults the role-rank authorization gate before touching
// an account other than the actor's own.
type UserUsecase interface {
	// List retrieves a page of accounts matching the search query.
	List(ctx context.Context, input *ListUsersInput) (*UserListOutput, error)

	// GetByUsername retrieves a single account by username.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create adds a new account on behalf of an admin-ranked actor.
	Create(ctx context.Context, actor *entity.User, input *CreateUserInput) (*entity.User, error)

	// Edit updates a target account, subject to the authorization gate.
	Edit(ctx context.Context, actor *entity.User, targetID string, input *EditUserInput) (*entity.User, error)

	// Delete soft-deletes a target account, subject to the authorization
	// gate. Super admin accounts can never be deleted.
	Delete(ctx context.Context, actor *entity.User, targetID string) error
}
