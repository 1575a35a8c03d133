package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "ratehub/internal/delivery/http/middleware"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	signupOutput *usecase.AuthOutput
	signupErr    error
	loginOutput  *usecase.AuthOutput
	loginErr     error
	changeErr    error
	meUser       *entity.User
	meErr        error

	lastSignup usecase.SignupInput
	lastChange usecase.ChangePasswordInput
	lastMe     uuid.UUID
}

func (s *stubAuthUsecase) Signup(_ context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	s.lastSignup = input

	return s.signupOutput, s.signupErr
}

func (s *stubAuthUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) ChangePassword(_ context.Context, input usecase.ChangePasswordInput) error {
	s.lastChange = input

	return s.changeErr
}

func (s *stubAuthUsecase) Me(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	s.lastMe = userID

	return s.meUser, s.meErr
}

// serveJSON runs a handler through a bare Echo instance with the application
// error handler installed, so error mapping is part of what gets asserted.
func serveJSON(t *testing.T, method, target, body string, configure func(c echo.Context), h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	errorMw := httpmiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.HTTPErrorHandler = errorMw.HandleHTTPError

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if configure != nil {
		configure(c)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthUsecase{
		signupOutput: &usecase.AuthOutput{
			User: &entity.User{
				ID:    userID,
				Name:  "Quality Street Groceries Ltd",
				Email: "new@example.com",
				Role:  entity.RoleUser,
			},
			Token: "signed-token",
		},
	}
	h := NewAuthHandler(stub)

	rec := serveJSON(t, http.MethodPost, "/auth/signup",
		`{"name":"Quality Street Groceries Ltd","email":"New@Example.com","password":"Password@123"}`,
		nil, h.Signup)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "New@Example.com", stub.lastSignup.Email)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User  userView `json:"user"`
			Token string   `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, userID, body.Data.User.ID)
	assert.Equal(t, "USER", body.Data.User.Role)
	assert.Equal(t, "signed-token", body.Data.Token)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Signup_ValidationErrorMapped(t *testing.T) {
	stub := &stubAuthUsecase{
		signupErr: domainerrors.ErrValidationFailed.WithDetails("Name must be between 20 and 60 characters."),
	}
	h := NewAuthHandler(stub)

	rec := serveJSON(t, http.MethodPost, "/auth/signup",
		`{"name":"Short","email":"new@example.com","password":"Password@123"}`,
		nil, h.Signup)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "Name must be between 20 and 60 characters.")
}

func TestAuthHandler_Login_InvalidCredentialsMapped(t *testing.T) {
	stub := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	h := NewAuthHandler(stub)

	rec := serveJSON(t, http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"Wrong@Pass1"}`,
		nil, h.Login)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Invalid credentials.")
}

func TestAuthHandler_ChangePassword_UsesAuthenticatedUser(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub)
	userID := uuid.New()

	rec := serveJSON(t, http.MethodPost, "/auth/change-password",
		`{"currentPassword":"Old@Pass123","newPassword":"New@Pass123"}`,
		func(c echo.Context) {
			c.Set(httpmiddleware.KeyUserID, userID)
		}, h.ChangePassword)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, stub.lastChange.UserID)
	assert.Equal(t, "Old@Pass123", stub.lastChange.CurrentPassword)
	assert.Contains(t, rec.Body.String(), "Password updated successfully.")
}

func TestAuthHandler_ChangePassword_MissingIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{})

	rec := serveJSON(t, http.MethodPost, "/auth/change-password",
		`{"currentPassword":"Old@Pass123","newPassword":"New@Pass123"}`,
		nil, h.ChangePassword)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me_ReturnsOwnProfile(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthUsecase{
		meUser: &entity.User{
			ID:      userID,
			Name:    "Quality Street Groceries Ltd",
			Email:   "me@example.com",
			Address: "12 High Street",
			Role:    entity.RoleStoreOwner,
		},
	}
	h := NewAuthHandler(stub)

	rec := serveJSON(t, http.MethodGet, "/users/me", "",
		func(c echo.Context) {
			c.Set(httpmiddleware.KeyUserID, userID)
		}, h.Me)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, stub.lastMe)

	var body struct {
		Success bool     `json:"success"`
		Data    userView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, userID, body.Data.ID)
	assert.Equal(t, "me@example.com", body.Data.Email)
	assert.Equal(t, "STORE_OWNER", body.Data.Role)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Me_UserGoneMapped(t *testing.T) {
	stub := &stubAuthUsecase{meErr: domainerrors.ErrUserNotFound}
	h := NewAuthHandler(stub)

	rec := serveJSON(t, http.MethodGet, "/users/me", "",
		func(c echo.Context) {
			c.Set(httpmiddleware.KeyUserID, uuid.New())
		}, h.Me)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestAuthHandler_Me_MissingIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{})

	rec := serveJSON(t, http.MethodGet, "/users/me", "", nil, h.Me)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
