package handler

import (
	"log/slog"
	"net/http"

	"shareplate/internal/delivery/http/response"
	"shareplate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceTokenHandler holds dependencies for device token handlers.
type DeviceTokenHandler struct {
	uc     usecase.DeviceTokenUsecase
	logger *slog.Logger
}

// NewDeviceTokenHandler is the constructor for DeviceTokenHandler, injected by Fx.
func NewDeviceTokenHandler(uc usecase.DeviceTokenUsecase, logger *slog.Logger) *DeviceTokenHandler {
	return &DeviceTokenHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDeviceTokenRequest represents the request body for registering a token.
type RegisterDeviceTokenRequest struct {
	DeviceToken string `json:"deviceToken" validate:"required"`
}

// Register stores a device token. Registering the same token twice returns
// the existing registration.
func (h *DeviceTokenHandler) Register(c echo.Context) error {
	var req RegisterDeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	registration, err := h.uc.Register(c.Request().Context(), req.DeviceToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, registration, "Device token registered successfully")
}
