package usecase

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRatingInput defines the data required to submit or overwrite a rating.
type SubmitRatingInput struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	Value   int
}

// RatingUsecase defines the interface for rating submission.
type RatingUsecase interface {
	// Submit records the user's rating for a store, overwriting any previous
	// rating by the same user for the same store.
	Submit(ctx context.Context, input SubmitRatingInput) (*entity.Rating, error)
}
