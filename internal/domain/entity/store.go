package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a rateable business listing. Stores are created by administrators
// only; a store may optionally be tied to the account of its owner.
type Store struct {
	ID        uuid.UUID  // The unique identifier for the store.
	Name      string     // Store name, 20-60 characters.
	Email     string     // Optional contact email; empty when not provided.
	Address   string     // Postal address, at most 400 characters.
	OwnerID   *uuid.UUID // Owning user, if any. The referenced user must hold RoleStoreOwner.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreWithStats is the read model for store listings: the store row joined
// with its computed average rating and, when requested for a specific user,
// that user's own rating.
type StoreWithStats struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	OwnerID       *uuid.UUID
	AverageRating float64 // Mean of all rating values; 0 when the store has none.
	UserRating    *int    // The requesting user's rating, nil when they have not rated.
}
