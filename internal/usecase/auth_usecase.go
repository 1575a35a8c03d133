// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required for public self-registration.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to rotate an authenticated
// user's password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a signed token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new normal user and returns a signed token for the
	// fresh account.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// ChangePassword verifies the current password and stores a hash of the
	// new one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
