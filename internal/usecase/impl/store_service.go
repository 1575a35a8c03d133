package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForUser returns every store with its average rating and the requesting
// user's own rating.
func (srv *storeService) ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.StoreWithStats, error) {
	stores, err := srv.storeRepo.ListForUser(ctx, userID, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// OwnerDashboard returns the owned store's aggregate rating together with the
// individual ratings and the raters who submitted them.
func (srv *storeService) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*usecase.OwnerDashboardOutput, error) {
	srv.log(ctx).Debug("Building owner dashboard", slog.String("ownerID", ownerID.String()))

	store, err := srv.storeRepo.FindByOwnerWithStats(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrOwnerStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store for owner")
	}

	ratings, err := srv.ratingRepo.ListByStoreWithRaters(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings for store")
	}

	return &usecase.OwnerDashboardOutput{
		Store:   store,
		Ratings: ratings,
	}, nil
}
