// Package impl contains the implementation of the application's business logic.
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

// Field-level messages returned to clients on validation failure.
const (
	msgInvalidName        = "Name must be between 20 and 60 characters."
	msgInvalidAddress     = "Address must be at most 400 characters."
	msgInvalidEmail       = "Invalid email."
	msgInvalidPassword    = "Password must be 8-16 chars, include one uppercase and one special character."
	msgInvalidNewPassword = "New password must be 8-16 chars, include one uppercase and one special character."
	msgWrongCurrent       = "Current password is incorrect."
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new normal user and signs a token for the fresh account.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if err := validateNewAccount(input.Name, input.Email, input.Address, input.Password); err != nil {
		return nil, err
	}

	user, err := createAccount(ctx, srv.userRepo, srv.hasher, input.Name, input.Email, input.Address, input.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	srv.log(ctx).Info("Signup completed", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Login verifies the credentials and signs a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Email and password are required.")
	}

	user, err := srv.userRepo.FindByEmail(ctx, validation.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// ChangePassword verifies the current password before storing a hash of the
// new one.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if !validation.ValidatePassword(input.NewPassword) {
		return domainerrors.ErrValidationFailed.WithDetails(msgInvalidNewPassword)
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrValidationFailed.WithDetails(msgWrongCurrent)
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, input.UserID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", input.UserID.String()))

	return nil
}

// Me returns the profile of the authenticated user. The account can vanish
// between token issuance and the lookup, so not-found is still surfaced.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// validateNewAccount runs the shared field rules for account creation and maps
// the first failure to its client-facing message.
func validateNewAccount(name, email, address, password string) error {
	if !validation.ValidateName(name) {
		return domainerrors.ErrValidationFailed.WithDetails(msgInvalidName)
	}
	if !validation.ValidateAddress(address) {
		return domainerrors.ErrValidationFailed.WithDetails(msgInvalidAddress)
	}
	if !validation.ValidateEmail(email) {
		return domainerrors.ErrValidationFailed.WithDetails(msgInvalidEmail)
	}
	if !validation.ValidatePassword(password) {
		return domainerrors.ErrValidationFailed.WithDetails(msgInvalidPassword)
	}

	return nil
}
