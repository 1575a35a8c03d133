// Package validator adapts go-playground/validator to Echo's Validator
// interface for request DTO binding.
package validator

import (
	"net/http"

	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator wraps a shared validator instance.
type RequestValidator struct {
	validate *validatorLib.Validate
}

// New creates the Echo request validator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validatorLib.New(validatorLib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag failures surface as a 400
// with the validator's message.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
