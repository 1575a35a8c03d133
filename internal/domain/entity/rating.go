package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a single submission.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a single user's 1-5 score for a store. At most one Rating exists
// per (user, store) pair; re-submission overwrites the value in place.
type Rating struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StoreID   uuid.UUID
	Value     int // Integer in [RatingMin, RatingMax].
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RatingWithRater is the read model for an owner's dashboard: a rating joined
// with the identity of the user who submitted it.
type RatingWithRater struct {
	ID         uuid.UUID
	Value      int
	CreatedAt  time.Time
	RaterID    uuid.UUID
	RaterName  string
	RaterEmail string
}

// DashboardStats carries the platform-wide totals shown to administrators.
type DashboardStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}
