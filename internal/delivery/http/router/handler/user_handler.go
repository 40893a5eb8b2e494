// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"shareplate/internal/delivery/http/middleware"
	"shareplate/internal/delivery/http/response"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc            usecase.UserUsecase
	offerUc       usecase.FoodOfferUsecase
	reservationUc usecase.ReservationUsecase
	logger        *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, offerUc usecase.FoodOfferUsecase, reservationUc usecase.ReservationUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:            uc,
		offerUc:       offerUc,
		reservationUc: reservationUc,
		logger:        logger,
	}
}

// SignupRequest represents the request body for user registration.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
}

// Signup handles the user registration request.
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash never leaves the server; the entity's json tags drop it.
	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": output.Token}, "Login successful")
}

// WhoAmI returns the stringified id of the authenticated user.
func (h *UserHandler) WhoAmI(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	return response.Success(c, http.StatusOK, userID.String(), "")
}

// GetUser returns a single user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// GetUserFirstName returns only the first name of a user.
func (h *UserHandler) GetUserFirstName(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	firstName, err := h.uc.GetUserFirstName(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, firstName, "")
}

// GetUserFoodOffers returns the food offers created by a user.
func (h *UserHandler) GetUserFoodOffers(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	offers, err := h.offerUc.ListByCreator(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// GetUserReservations returns the reservations made by a user.
func (h *UserHandler) GetUserReservations(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	reservations, err := h.reservationUc.ListByReserver(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// UpdateDeviceTokenRequest represents the request body for a token update.
type UpdateDeviceTokenRequest struct {
	DeviceToken string `json:"deviceToken" validate:"required"`
}

// UpdateDeviceToken replaces the stored push token of a user.
// An unknown user id yields a 404.
func (h *UserHandler) UpdateDeviceToken(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req UpdateDeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateDeviceToken(c.Request().Context(), userID, req.DeviceToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token updated successfully")
}
