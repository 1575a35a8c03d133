package impl

import (
	"context"
	"strings"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/domain/validation"

	"github.com/pkg/errors"
)

// normalizeName trims surrounding whitespace before storage; the length rule
// is checked against the trimmed form as well.
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// createAccount hashes the password and persists the user. The repository
// maps a unique-email collision to ErrEmailAlreadyRegistered; the collision
// is surfaced as the conflict error rather than pre-checked, so concurrent
// signups with the same email cannot both succeed.
func createAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	name, email, address, password string,
	role entity.Role,
) (*entity.User, error) {
	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Name:         normalizeName(name),
		Email:        validation.NormalizeEmail(email),
		Address:      address,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyRegistered) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}
