package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shareplate/internal/delivery/http/response"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReservationRequest represents the request body for claiming an offer.
type CreateReservationRequest struct {
	ReservedBy  uuid.UUID  `json:"reservedBy" validate:"required"`
	FoodOfferID *uuid.UUID `json:"foodOfferId"`
	Timestamp   time.Time  `json:"timestamp"`
}

// Create claims a food offer for a user.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reservation, err := h.uc.Create(c.Request().Context(), &usecase.CreateReservationInput{
		ReservedBy:  req.ReservedBy,
		FoodOfferID: req.FoodOfferID,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation created successfully")
}

// GetByID returns a single reservation.
func (h *ReservationHandler) GetByID(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	reservation, err := h.uc.GetByID(c.Request().Context(), reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "")
}

// UpdateReservationRequest represents a partial reservation update.
type UpdateReservationRequest struct {
	TimeOfPickup *time.Time `json:"timeOfPickup"`
	Accepted     *bool      `json:"accepted"`
}

// Patch applies a partial update to a reservation.
func (h *ReservationHandler) Patch(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	var req UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	err = h.uc.Update(c.Request().Context(), reservationID, &usecase.UpdateReservationInput{
		TimeOfPickup: req.TimeOfPickup,
		Accepted:     req.Accepted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a reservation and frees the attached offer.
func (h *ReservationHandler) Delete(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	if err := h.uc.Delete(c.Request().Context(), reservationID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
