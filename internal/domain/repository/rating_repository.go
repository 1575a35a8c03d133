package repository

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the operations over individual ratings.
type RatingRepository interface {
	// Upsert atomically inserts the rating or, when a row for the same
	// (user, store) pair already exists, overwrites its value and refreshes
	// its updated timestamp. The write is keyed on the unique constraint;
	// implementations must not read-then-write.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// ListByStoreWithRaters returns the individual ratings for a store joined
	// with the submitting users, newest first.
	ListByStoreWithRaters(ctx context.Context, storeID uuid.UUID) ([]*entity.RatingWithRater, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
