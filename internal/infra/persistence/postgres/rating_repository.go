package postgres

import (
	"context"
	"time"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or overwrites the existing value for the same
// (user, store) pair. The conflict target is the composite unique index, so
// two concurrent submissions by the same user collapse into one row with the
// later value.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		UserID:  rating.UserID,
		StoreID: rating.StoreID,
		Rating:  rating.Value,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     rating.Value,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(ratingM).Error
	if err != nil {
		// The store-exists check in the service races with deletes; the FK is
		// the final arbiter.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}
		if isCheckConstraintViolation(err) {
			return errors.Errorf("rating %d outside allowed range", rating.Value)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// ListByStoreWithRaters returns the individual ratings for a store joined with
// the submitting users, newest first.
func (repo *ratingRepository) ListByStoreWithRaters(ctx context.Context, storeID uuid.UUID) ([]*entity.RatingWithRater, error) {
	type ratingRaterRow struct {
		ID         uuid.UUID
		Rating     int
		CreatedAt  time.Time
		RaterID    uuid.UUID
		RaterName  string
		RaterEmail string
	}

	var rows []ratingRaterRow
	if err := repo.db.WithContext(ctx).
		Table("ratings AS r").
		Select("r.id, r.rating, r.created_at, u.id AS rater_id, u.name AS rater_name, u.email AS rater_email").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.store_id = ?", storeID).
		Order("r.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings for store")
	}

	ratings := make([]*entity.RatingWithRater, 0, len(rows))
	for i := range rows {
		ratings = append(ratings, &entity.RatingWithRater{
			ID:         rows[i].ID,
			Value:      rows[i].Rating,
			CreatedAt:  rows[i].CreatedAt,
			RaterID:    rows[i].RaterID,
			RaterName:  rows[i].RaterName,
			RaterEmail: rows[i].RaterEmail,
		})
	}

	return ratings, nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}
