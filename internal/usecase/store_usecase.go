package usecase

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerDashboardOutput carries a store owner's view of their own store: the
// aggregate rating plus every individual rating with the rater's identity.
type OwnerDashboardOutput struct {
	Store   *entity.StoreWithStats
	Ratings []*entity.RatingWithRater
}

// StoreUsecase defines the interface for store browsing operations.
type StoreUsecase interface {
	// ListForUser returns every store with its average rating and the
	// requesting user's own rating, optionally narrowed by a search term.
	ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.StoreWithStats, error)

	// OwnerDashboard returns the dashboard for the store owned by the given
	// user.
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboardOutput, error)
}
