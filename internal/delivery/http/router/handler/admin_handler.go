package handler

import (
	"net/http"
	"strings"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type dashboardView struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// Dashboard returns the platform-wide totals.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboardView{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
	}, "")
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser creates an account with an explicit role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var input createUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Address:  input.Address,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "User created successfully")
}

type createStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID string `json:"ownerId"`
}

type createdStoreView struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	OwnerID *uuid.UUID `json:"ownerId"`
}

// CreateStore creates a store, optionally tied to a store owner account.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var input createStoreRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	var ownerID *uuid.UUID
	if input.OwnerID != "" {
		parsed, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "Owner must be a valid store owner user.")
		}
		ownerID = &parsed
	}

	store, err := h.uc.CreateStore(c.Request().Context(), usecase.CreateStoreInput{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createdStoreView{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: store.OwnerID,
	}, "Store created successfully")
}

// ListUsers returns users matching the optional name, email, address and role
// filters, ordered by name.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	}
	if role := c.QueryParam("role"); role != "" {
		filter.Role = entity.Role(strings.ToUpper(role))
	}

	users, err := h.uc.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListStores returns stores with their average ratings matching the optional
// filters, ordered by name.
func (h *AdminHandler) ListStores(c echo.Context) error {
	filter := repository.StoreFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.uc.ListStores(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreViews(stores, false), "")
}

type storeRatingInfoView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AverageRating float64   `json:"averageRating"`
}

type userDetailsView struct {
	User            userView             `json:"user"`
	StoreRatingInfo *storeRatingInfoView `json:"storeRatingInfo"`
}

// GetUserDetails returns a single user's details; for store owners the
// response also carries the aggregate rating of their store.
func (h *AdminHandler) GetUserDetails(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	details, err := h.uc.GetUserDetails(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	view := userDetailsView{User: toUserView(details.User)}
	if details.StoreRating != nil {
		view.StoreRatingInfo = &storeRatingInfoView{
			ID:            details.StoreRating.ID,
			Name:          details.StoreRating.Name,
			AverageRating: details.StoreRating.AverageRating,
		}
	}

	return response.Success(c, http.StatusOK, view, "")
}
