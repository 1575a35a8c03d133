package handler

import (
	"time"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the client-facing shape of an account; the password hash never
// leaves the service.
type userView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	Role    string    `json:"role"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role.String(),
	}
}

// storeView is the listing shape shared by user browsing and admin listings.
// UserRating is only present on the user-facing listing.
type storeView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	AverageRating float64   `json:"averageRating"`
	UserRating    *int      `json:"userRating,omitempty"`
}

func toStoreView(stats *entity.StoreWithStats, includeUserRating bool) storeView {
	view := storeView{
		ID:            stats.ID,
		Name:          stats.Name,
		Email:         stats.Email,
		Address:       stats.Address,
		AverageRating: stats.AverageRating,
	}
	if includeUserRating {
		view.UserRating = stats.UserRating
	}

	return view
}

func toStoreViews(stats []*entity.StoreWithStats, includeUserRating bool) []storeView {
	views := make([]storeView, 0, len(stats))
	for _, s := range stats {
		views = append(views, toStoreView(s, includeUserRating))
	}

	return views
}

// ratingView is a single rating on the owner dashboard, joined with the rater.
type ratingView struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

func toRatingViews(ratings []*entity.RatingWithRater) []ratingView {
	views := make([]ratingView, 0, len(ratings))
	for _, r := range ratings {
		views = append(views, ratingView{
			ID:        r.ID,
			Rating:    r.Value,
			CreatedAt: r.CreatedAt,
			UserID:    r.RaterID,
			UserName:  r.RaterName,
			UserEmail: r.RaterEmail,
		})
	}

	return views
}
