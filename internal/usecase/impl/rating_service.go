package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgInvalidRating = "Rating must be between 1 and 5."

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records the user's rating for a store, overwriting any previous
// rating by the same user for the same store.
func (srv *ratingService) Submit(ctx context.Context, input usecase.SubmitRatingInput) (*entity.Rating, error) {
	if input.Value < entity.RatingMin || input.Value > entity.RatingMax {
		return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidRating)
	}

	exists, err := srv.storeRepo.Exists(ctx, input.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check store existence")
	}
	if !exists {
		return nil, domainerrors.ErrStoreNotFound
	}

	rating := &entity.Rating{
		UserID:  input.UserID,
		StoreID: input.StoreID,
		Value:   input.Value,
	}

	if err := srv.ratingRepo.Upsert(ctx, rating); err != nil {
		// The existence check above races with store deletion; the FK maps
		// that window back to the same not-found answer.
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert rating")
	}

	srv.log(ctx).Info("Rating submitted",
		slog.String("userID", input.UserID.String()),
		slog.String("storeID", input.StoreID.String()),
		slog.Int("rating", input.Value),
	)

	return rating, nil
}
