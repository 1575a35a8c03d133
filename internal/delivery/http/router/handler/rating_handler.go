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

// RatingHandler holds dependencies for rating submission.
type RatingHandler struct {
	uc usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

type submitRatingRequest struct {
	StoreID string `json:"storeId"`
	Rating  int    `json:"rating"`
}

// Submit records or overwrites the authenticated user's rating for a store.
func (h *RatingHandler) Submit(c echo.Context) error {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var input submitRatingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if input.StoreID == "" || input.Rating == 0 {
		return response.BadRequest(c, "VALIDATION_FAILED", "Store ID and rating are required.")
	}

	storeID, err := uuid.Parse(input.StoreID)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid store ID.")
	}

	if _, err := h.uc.Submit(c.Request().Context(), usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   input.Rating,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating submitted successfully.")
}
