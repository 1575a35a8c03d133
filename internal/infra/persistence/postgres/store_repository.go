package postgres

import (
	"context"
	"strings"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeStatsColumns is the aggregate projection shared by every store listing.
// COALESCE keeps unrated stores at 0 instead of NULL, and the MAX(CASE ...)
// trick extracts the requesting user's own rating from the same join without a
// second query.
const storeStatsColumns = "s.id, s.name, s.email, s.address, s.owner_id, " +
	"COALESCE(AVG(r.rating), 0) AS average_rating"

// storeStatsRow is the scan target for the aggregate listing queries.
type storeStatsRow struct {
	ID            uuid.UUID
	Name          string
	Email         *string
	Address       string
	OwnerID       *uuid.UUID
	AverageRating float64
	UserRating    *int
}

// storeRepository implements the repository.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create persists a new store entity.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreOwnerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Exists reports whether a store with the given ID is present.
func (repo *storeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check store existence")
	}

	return count > 0, nil
}

// ListForUser returns every store with its average rating and the given user's
// own rating in a single grouped query. An optional search term narrows the
// result by name or address.
func (repo *storeRepository) ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.StoreWithStats, error) {
	query := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select(storeStatsColumns+", MAX(CASE WHEN r.user_id = ? THEN r.rating END) AS user_rating", userID).
		Joins("LEFT JOIN ratings r ON r.store_id = s.id").
		Group("s.id, s.name, s.email, s.address, s.owner_id").
		Order("s.name ASC")

	if search != "" {
		pattern := containsPattern(search)
		query = query.Where("LOWER(s.name) LIKE ? OR LOWER(s.address) LIKE ?", pattern, pattern)
	}

	var rows []storeStatsRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores for user")
	}

	return toStoreStats(rows), nil
}

// ListWithStats returns stores matching the admin filter with their average
// ratings, ordered by name ascending.
func (repo *storeRepository) ListWithStats(ctx context.Context, filter repository.StoreFilter) ([]*entity.StoreWithStats, error) {
	query := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select(storeStatsColumns).
		Joins("LEFT JOIN ratings r ON r.store_id = s.id").
		Group("s.id, s.name, s.email, s.address, s.owner_id").
		Order("s.name ASC")

	if filter.Name != "" {
		query = query.Where("LOWER(s.name) LIKE ?", containsPattern(filter.Name))
	}
	if filter.Email != "" {
		query = query.Where("LOWER(s.email) LIKE ?", containsPattern(filter.Email))
	}
	if filter.Address != "" {
		query = query.Where("LOWER(s.address) LIKE ?", containsPattern(filter.Address))
	}

	var rows []storeStatsRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores with stats")
	}

	return toStoreStats(rows), nil
}

// FindByOwnerWithStats returns the store owned by the given user together with
// its average rating.
func (repo *storeRepository) FindByOwnerWithStats(ctx context.Context, ownerID uuid.UUID) (*entity.StoreWithStats, error) {
	var rows []storeStatsRow
	if err := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select(storeStatsColumns).
		Joins("LEFT JOIN ratings r ON r.store_id = s.id").
		Where("s.owner_id = ?", ownerID).
		Group("s.id, s.name, s.email, s.address, s.owner_id").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find store by owner")
	}
	if len(rows) == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return toStoreStatsRow(rows[0]), nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// containsPattern builds a case-insensitive LIKE pattern matching the term
// anywhere in the column. LIKE wildcards in the term itself are escaped so
// user input cannot widen the match.
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(term)

	return "%" + strings.ToLower(escaped) + "%"
}

func toStoreStats(rows []storeStatsRow) []*entity.StoreWithStats {
	stats := make([]*entity.StoreWithStats, 0, len(rows))
	for i := range rows {
		stats = append(stats, toStoreStatsRow(rows[i]))
	}

	return stats
}

func toStoreStatsRow(row storeStatsRow) *entity.StoreWithStats {
	email := ""
	if row.Email != nil {
		email = *row.Email
	}

	return &entity.StoreWithStats{
		ID:            row.ID,
		Name:          row.Name,
		Email:         email,
		Address:       row.Address,
		OwnerID:       row.OwnerID,
		AverageRating: row.AverageRating,
		UserRating:    row.UserRating,
	}
}

func fromStoreDomain(store *entity.Store) *model.StoreModel {
	var email *string
	if store.Email != "" {
		email = &store.Email
	}

	return &model.StoreModel{
		ID:        store.ID,
		Name:      store.Name,
		Email:     email,
		Address:   store.Address,
		OwnerID:   store.OwnerID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}
