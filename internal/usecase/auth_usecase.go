// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"evently/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the data for updating the caller's own profile.
// Name and email are required; the rest are optional and applied only when set.
type UpdateProfileInput struct {
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Bio       *string    `json:"bio,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Photo     *string    `json:"photo,omitempty"`
	Locations []string   `json:"locations,omitempty"`
}

// --- Output DTOs ---

// LoginOutput returns the authenticated account and its session token.
type LoginOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with a derived unique username and
	// immediately issues a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*LoginOutput, error)

	// Login verifies credentials and issues a session token. Failures are
	// uniform: a missing account and a wrong password are indistinguishable.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns the account for the authenticated caller.
	GetProfile(ctx context.Context, actor *entity.User) (*entity.User, error)

	// UpdateProfile updates the caller's own account.
	UpdateProfile(ctx context.Context, actor *entity.User, input *UpdateProfileInput) (*entity.User, error)
}
