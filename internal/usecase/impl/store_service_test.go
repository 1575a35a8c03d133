package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service    usecase.StoreUsecase
	storeRepo  *stubStoreRepo
	ratingRepo *stubRatingRepo
}

func createTestStoreService() storeServiceFixtures {
	storeRepo := newStubStoreRepo()
	ratingRepo := newStubRatingRepo()

	service := NewStoreService(StoreServiceParams{
		StoreRepo:  storeRepo,
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:    service,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func TestStoreService_ListForUser(t *testing.T) {
	fixtures := createTestStoreService()
	rated := 4
	fixtures.storeRepo.listed = []*entity.StoreWithStats{
		{Name: "Corner Shop", AverageRating: 4.2, UserRating: &rated},
		{Name: "Deli", AverageRating: 0},
	}

	stores, err := fixtures.service.ListForUser(context.Background(), uuid.New(), "shop")

	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "shop", fixtures.storeRepo.lastSearch)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 4, *stores[0].UserRating)
	assert.Nil(t, stores[1].UserRating)
}

func TestStoreService_OwnerDashboard_Success(t *testing.T) {
	fixtures := createTestStoreService()
	ownerID := uuid.New()
	storeID := uuid.New()
	fixtures.storeRepo.statsByOwn[ownerID] = &entity.StoreWithStats{
		ID:            storeID,
		Name:          "Owned Store",
		AverageRating: 4.0,
	}
	fixtures.ratingRepo.byStore[storeID] = []*entity.RatingWithRater{
		{Value: 5, RaterName: "First Rater"},
		{Value: 3, RaterName: "Second Rater"},
	}

	dashboard, err := fixtures.service.OwnerDashboard(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, storeID, dashboard.Store.ID)
	require.Len(t, dashboard.Ratings, 2)
	assert.Equal(t, "First Rater", dashboard.Ratings[0].RaterName)
}

func TestStoreService_OwnerDashboard_NoStore(t *testing.T) {
	fixtures := createTestStoreService()

	dashboard, err := fixtures.service.OwnerDashboard(context.Background(), uuid.New())

	require.Error(t, err)
	require.Nil(t, dashboard)
	appErr := requireAppError(t, err, "OWNER_STORE_NOT_FOUND")
	assert.Equal(t, "No store associated with this owner.", appErr.Message())
}
