package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/domain/validation"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgInvalidOwner = "Owner must be a valid store owner user."

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardStats returns the platform-wide totals.
func (srv *adminService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &entity.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// CreateUser creates an account with an explicit role. Unrecognized role
// strings fall back to the normal user role.
func (srv *adminService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if err := validateNewAccount(input.Name, input.Email, input.Address, input.Password); err != nil {
		return nil, err
	}

	role := entity.ParseRole(input.Role)

	user, err := createAccount(ctx, srv.userRepo, srv.hasher, input.Name, input.Email, input.Address, input.Password, role)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin created user",
		slog.String("userID", user.ID.String()),
		slog.Any("role", user.Role),
	)

	return user, nil
}

// CreateStore creates a store. When an owner is given, that account must hold
// the store owner role.
func (srv *adminService) CreateStore(ctx context.Context, input usecase.CreateStoreInput) (*entity.Store, error) {
	if !validation.ValidateName(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidName)
	}
	if !validation.ValidateAddress(input.Address) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidAddress)
	}
	if input.Email != "" && !validation.ValidateEmail(input.Email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidEmail)
	}

	if input.OwnerID != nil {
		owner, err := srv.userRepo.FindByID(ctx, *input.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidOwner)
			}

			return nil, errors.Wrap(err, "failed to find store owner")
		}
		if owner.Role != entity.RoleStoreOwner {
			return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidOwner)
		}
	}

	store := &entity.Store{
		Name:    normalizeName(input.Name),
		Email:   validation.NormalizeEmail(input.Email),
		Address: input.Address,
		OwnerID: input.OwnerID,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		// The role check above races with user deletion; the FK closes the
		// window.
		if errors.Is(err, repository.ErrStoreOwnerNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(msgInvalidOwner)
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Admin created store", slog.String("storeID", store.ID.String()))

	return store, nil
}

// ListUsers returns users matching the filter, ordered by name.
func (srv *adminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListStores returns stores with their average ratings, ordered by name.
func (srv *adminService) ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.StoreWithStats, error) {
	stores, err := srv.storeRepo.ListWithStats(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetUserDetails returns a single user's details. For store owners the
// response also carries their store's aggregate rating, when one exists.
func (srv *adminService) GetUserDetails(ctx context.Context, id uuid.UUID) (*usecase.UserDetailsOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	output := &usecase.UserDetailsOutput{User: user}

	if user.Role == entity.RoleStoreOwner {
		store, err := srv.storeRepo.FindByOwnerWithStats(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(err, "failed to find store for owner")
		}
		if err == nil {
			output.StoreRating = store
		}
	}

	return output, nil
}
