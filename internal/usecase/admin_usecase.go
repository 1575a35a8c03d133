package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data an administrator supplies to create an
// account with an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

// CreateStoreInput defines the data an administrator supplies to create a
// store, optionally tied to an owner account.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *uuid.UUID
}

// --- Output DTOs ---

// UserDetailsOutput carries a user's account data and, for store owners, the
// aggregate rating of their store. StoreRating is nil for other roles and for
// owners without a store.
type UserDetailsOutput struct {
	User        *entity.User
	StoreRating *entity.StoreWithStats
}

// AdminUsecase defines the interface for administrator operations.
type AdminUsecase interface {
	// DashboardStats returns the platform-wide totals.
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	// CreateUser creates an account with the given role. Unrecognized roles
	// fall back to the normal user role.
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)

	// CreateStore creates a store. When OwnerID is set, the referenced user
	// must hold the store owner role.
	CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Store, error)

	// ListUsers returns users matching the filter, ordered by name.
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error)

	// ListStores returns stores with their average ratings, ordered by name.
	ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.StoreWithStats, error)

	// GetUserDetails returns a single user's details, including their store's
	// rating when the user is a store owner.
	GetUserDetails(ctx context.Context, id uuid.UUID) (*UserDetailsOutput, error)
}
