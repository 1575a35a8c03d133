package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")

	// ErrStoreOwnerNotFound is returned when a store references an owner that
	// does not exist.
	ErrStoreOwnerNotFound = errors.New("store owner not found")
)

// StoreFilter holds the optional admin listing filters; each non-empty field
// is matched as a case-insensitive substring, combined with AND.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreRepository defines the standard operations for store persistence and
// the aggregate read models built over the ratings relation.
type StoreRepository interface {
	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// Exists reports whether a store with the given ID is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ListForUser returns every store with its average rating and the given
	// user's own rating, optionally filtered by a case-insensitive substring
	// match on name or address. Ordered by store name ascending.
	ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.StoreWithStats, error)

	// ListWithStats returns stores matching the filter with their average
	// ratings, ordered by name ascending.
	ListWithStats(ctx context.Context, filter StoreFilter) ([]*entity.StoreWithStats, error)

	// FindByOwnerWithStats returns the store owned by the given user together
	// with its average rating, or ErrStoreNotFound when the owner has none.
	FindByOwnerWithStats(ctx context.Context, ownerID uuid.UUID) (*entity.StoreWithStats, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
