package postgres

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a gorm session over a sqlmock connection so the statements
// the repositories emit can be asserted without a live database. The session
// options mirror the production ones from postgres.go.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

// ratingUpsertPattern pins the conflict target to the composite unique index
// on (user_id, store_id). A repeated submission must route into the DO UPDATE
// branch instead of inserting a second row for the pair.
const ratingUpsertPattern = `INSERT INTO "ratings" (.+) ON CONFLICT \("user_id","store_id"\) DO UPDATE SET "rating"=(.+),"updated_at"=NOW\(\)(.+)RETURNING "id"`

func TestRatingRepository_Upsert_ConflictTargetsUserStorePair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)
	rowID := uuid.New()

	mock.ExpectQuery(ratingUpsertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rowID.String()))

	rating := &entity.Rating{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Value:   4,
	}
	err := repo.Upsert(context.Background(), rating)

	require.NoError(t, err)
	assert.Equal(t, rowID, rating.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Upsert_SecondSubmissionUpdatesSameRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)
	userID := uuid.New()
	storeID := uuid.New()
	rowID := uuid.New()

	// Both submissions resolve to the same row: the second hits the conflict
	// branch of the same statement and comes back with the original id.
	mock.ExpectQuery(ratingUpsertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rowID.String()))
	mock.ExpectQuery(ratingUpsertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rowID.String()))

	first := &entity.Rating{UserID: userID, StoreID: storeID, Value: 4}
	require.NoError(t, repo.Upsert(context.Background(), first))

	second := &entity.Rating{UserID: userID, StoreID: storeID, Value: 2}
	require.NoError(t, repo.Upsert(context.Background(), second))

	assert.Equal(t, first.ID, second.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Upsert_MissingStoreMapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectQuery(ratingUpsertPattern).
		WillReturnError(errors.New(`ERROR: insert or update on table "ratings" violates foreign key constraint "fk_ratings_store" (SQLSTATE 23503)`))

	err := repo.Upsert(context.Background(), &entity.Rating{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Value:   3,
	})

	require.ErrorIs(t, err, repository.ErrStoreNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_Upsert_CheckViolationSurfaced(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectQuery(ratingUpsertPattern).
		WillReturnError(errors.New(`ERROR: new row for relation "ratings" violates check constraint "chk_ratings_rating" (SQLSTATE 23514)`))

	err := repo.Upsert(context.Background(), &entity.Rating{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Value:   9,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside allowed range")
	require.NoError(t, mock.ExpectationsWereMet())
}
