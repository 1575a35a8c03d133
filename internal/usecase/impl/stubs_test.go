package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireAppError asserts that err carries the given business error code and
// returns the typed error for further inspection.
func requireAppError(t *testing.T, err error, code string) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.ErrorCode())

	return appErr
}

// --- stub repositories ---

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User

	createErr  error
	lastFilter repository.UserFilter
	count      int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (s *stubUserRepo) add(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user

	return user
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repository.ErrEmailAlreadyRegistered
		}
	}
	user.ID = uuid.New()
	s.users[user.ID] = user

	return nil
}

func (s *stubUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash

	return nil
}

func (s *stubUserRepo) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	s.lastFilter = filter

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}

	return users, nil
}

func (s *stubUserRepo) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	var count int64
	for _, user := range s.users {
		if user.Role == role {
			count++
		}
	}

	return count, nil
}

func (s *stubUserRepo) Count(_ context.Context) (int64, error) {
	if s.count != 0 {
		return s.count, nil
	}

	return int64(len(s.users)), nil
}

type stubStoreRepo struct {
	stores     map[uuid.UUID]*entity.Store
	statsByOwn map[uuid.UUID]*entity.StoreWithStats
	listed     []*entity.StoreWithStats

	createErr  error
	lastSearch string
	lastFilter repository.StoreFilter
	count      int64
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{
		stores:     make(map[uuid.UUID]*entity.Store),
		statsByOwn: make(map[uuid.UUID]*entity.StoreWithStats),
	}
}

func (s *stubStoreRepo) Create(_ context.Context, store *entity.Store) error {
	if s.createErr != nil {
		return s.createErr
	}
	store.ID = uuid.New()
	s.stores[store.ID] = store

	return nil
}

func (s *stubStoreRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.stores[id]

	return ok, nil
}

func (s *stubStoreRepo) ListForUser(_ context.Context, _ uuid.UUID, search string) ([]*entity.StoreWithStats, error) {
	s.lastSearch = search

	return s.listed, nil
}

func (s *stubStoreRepo) ListWithStats(_ context.Context, filter repository.StoreFilter) ([]*entity.StoreWithStats, error) {
	s.lastFilter = filter

	return s.listed, nil
}

func (s *stubStoreRepo) FindByOwnerWithStats(_ context.Context, ownerID uuid.UUID) (*entity.StoreWithStats, error) {
	if stats, ok := s.statsByOwn[ownerID]; ok {
		return stats, nil
	}

	return nil, repository.ErrStoreNotFound
}

func (s *stubStoreRepo) Count(_ context.Context) (int64, error) {
	if s.count != 0 {
		return s.count, nil
	}

	return int64(len(s.stores)), nil
}

type stubRatingRepo struct {
	upserted []*entity.Rating
	byStore  map[uuid.UUID][]*entity.RatingWithRater

	upsertErr error
	count     int64
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{byStore: make(map[uuid.UUID][]*entity.RatingWithRater)}
}

func (s *stubRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	rating.ID = uuid.New()
	s.upserted = append(s.upserted, rating)

	return nil
}

func (s *stubRatingRepo) ListByStoreWithRaters(_ context.Context, storeID uuid.UUID) ([]*entity.RatingWithRater, error) {
	return s.byStore[storeID], nil
}

func (s *stubRatingRepo) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

// --- stub domain services ---

type stubHasher struct {
	hashErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct {
	generateErr error
}

func (s *stubTokenService) Generate(userID uuid.UUID, _ entity.Role) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}

	return "token-" + userID.String(), nil
}

func (s *stubTokenService) Validate(_ string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}
