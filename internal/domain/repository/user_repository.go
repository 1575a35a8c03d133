// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailAlreadyRegistered is returned when a create collides with the
// unique email constraint.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// UserFilter holds the optional admin listing filters. Each non-empty text
// field is matched as a case-insensitive substring; Role is matched exactly.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their lower-cased email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// List returns users matching the filter, ordered by name ascending.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// CountByRole counts users holding a specific role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
