// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound request payload.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
