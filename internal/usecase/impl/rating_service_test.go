package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	storeRepo  *stubStoreRepo
	ratingRepo *stubRatingRepo
}

func createTestRatingService() ratingServiceFixtures {
	storeRepo := newStubStoreRepo()
	ratingRepo := newStubRatingRepo()

	service := NewRatingService(RatingServiceParams{
		StoreRepo:  storeRepo,
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:    service,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func TestRatingService_Submit_Success(t *testing.T) {
	fixtures := createTestRatingService()
	store := &entity.Store{Name: "Rated Store"}
	require.NoError(t, fixtures.storeRepo.Create(context.Background(), store))
	userID := uuid.New()

	rating, err := fixtures.service.Submit(context.Background(), usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: store.ID,
		Value:   5,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, rating.UserID)
	assert.Equal(t, store.ID, rating.StoreID)
	assert.Equal(t, 5, rating.Value)
	require.Len(t, fixtures.ratingRepo.upserted, 1)
}

func TestRatingService_Submit_ValueOutOfRange(t *testing.T) {
	fixtures := createTestRatingService()

	for _, value := range []int{0, 6, -1} {
		_, err := fixtures.service.Submit(context.Background(), usecase.SubmitRatingInput{
			UserID:  uuid.New(),
			StoreID: uuid.New(),
			Value:   value,
		})

		require.Error(t, err)
		appErr := requireAppError(t, err, "VALIDATION_FAILED")
		assert.Equal(t, "Rating must be between 1 and 5.", appErr.Details())
	}
	assert.Empty(t, fixtures.ratingRepo.upserted)
}

func TestRatingService_Submit_StoreMissing(t *testing.T) {
	fixtures := createTestRatingService()

	_, err := fixtures.service.Submit(context.Background(), usecase.SubmitRatingInput{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		Value:   3,
	})

	require.Error(t, err)
	requireAppError(t, err, "STORE_NOT_FOUND")
}

func TestRatingService_Submit_StoreDeletedDuringUpsert(t *testing.T) {
	fixtures := createTestRatingService()
	store := &entity.Store{Name: "Vanishing Store"}
	require.NoError(t, fixtures.storeRepo.Create(context.Background(), store))
	fixtures.ratingRepo.upsertErr = repository.ErrStoreNotFound

	_, err := fixtures.service.Submit(context.Background(), usecase.SubmitRatingInput{
		UserID:  uuid.New(),
		StoreID: store.ID,
		Value:   4,
	})

	require.Error(t, err)
	requireAppError(t, err, "STORE_NOT_FOUND")
}
