package handler

import (
	"net/http"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store browsing handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List returns every store with its average rating and the requesting user's
// own rating, optionally narrowed by the search query parameter.
func (h *StoreHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	stores, err := h.uc.ListForUser(c.Request().Context(), userID, c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreViews(stores, true), "")
}

type ownerDashboardView struct {
	Store   storeView    `json:"store"`
	Ratings []ratingView `json:"ratings"`
}

// OwnerRatings returns the dashboard for the store owned by the requesting
// user: the aggregate rating plus every individual rating with its rater.
func (h *StoreHandler) OwnerRatings(c echo.Context) error {
	ownerID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	dashboard, err := h.uc.OwnerDashboard(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ownerDashboardView{
		Store:   toStoreView(dashboard.Store, false),
		Ratings: toRatingViews(dashboard.Ratings),
	}, "")
}
