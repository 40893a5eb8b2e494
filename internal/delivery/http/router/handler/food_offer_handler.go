package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"shareplate/internal/delivery/http/response"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodOfferHandler holds dependencies for food offer handlers.
type FoodOfferHandler struct {
	uc     usecase.FoodOfferUsecase
	logger *slog.Logger
}

// NewFoodOfferHandler is the constructor for FoodOfferHandler, injected by Fx.
func NewFoodOfferHandler(uc usecase.FoodOfferUsecase, logger *slog.Logger) *FoodOfferHandler {
	return &FoodOfferHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateFoodOfferRequest represents the request body for publishing an offer.
type CreateFoodOfferRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Location    string     `json:"location"`
	Datetime    time.Time  `json:"datetime"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
}

// Create publishes a new food offer.
func (h *FoodOfferHandler) Create(c echo.Context) error {
	var req CreateFoodOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.uc.Create(c.Request().Context(), &usecase.CreateFoodOfferInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		Datetime:    req.Datetime,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Food offer created successfully")
}

// List returns all food offers, newest first.
func (h *FoodOfferHandler) List(c echo.Context) error {
	offers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// Count returns the total number of food offers.
func (h *FoodOfferHandler) Count(c echo.Context) error {
	count, err := h.uc.Count(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "")
}

// GetByID returns a single food offer.
func (h *FoodOfferHandler) GetByID(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	offer, err := h.uc.GetByID(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "")
}

// PatchFoodOfferRequest represents a partial offer update. Absent fields are
// left untouched.
type PatchFoodOfferRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Location    *string    `json:"location"`
	Datetime    *time.Time `json:"datetime"`
	Reserved    *bool      `json:"reserved"`
	PickedUp    *bool      `json:"pickedUp"`
}

// Patch applies a partial update to an offer.
func (h *FoodOfferHandler) Patch(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	var req PatchFoodOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food offer input")
	}

	err = h.uc.Patch(c.Request().Context(), offerID, &usecase.PatchFoodOfferInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		Datetime:    req.Datetime,
		Reserved:    req.Reserved,
		PickedUp:    req.PickedUp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReplaceFoodOfferRequest represents a full replacement of an offer.
type ReplaceFoodOfferRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Location    string     `json:"location"`
	Datetime    time.Time  `json:"datetime"`
	Reserved    bool       `json:"reserved"`
	PickedUp    bool       `json:"pickedUp"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
}

// Replace overwrites all mutable fields of an offer.
func (h *FoodOfferHandler) Replace(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	var req ReplaceFoodOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.Replace(c.Request().Context(), offerID, &usecase.ReplaceFoodOfferInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		Datetime:    req.Datetime,
		Reserved:    req.Reserved,
		PickedUp:    req.PickedUp,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes an offer.
func (h *FoodOfferHandler) Delete(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	if err := h.uc.Delete(c.Request().Context(), offerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetReservation returns the reservation attached to an offer.
func (h *FoodOfferHandler) GetReservation(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	reservation, err := h.uc.GetReservation(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "")
}

// ConvertAddressRequest represents the request body for the geocoding proxy.
type ConvertAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// ConvertAddress resolves a free-form address into a "lat,lng" string.
func (h *FoodOfferHandler) ConvertAddress(c echo.Context) error {
	var req ConvertAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	coordinates, err := h.uc.GeocodeAddress(c.Request().Context(), req.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coordinates, "")
}

// GetPickupQR serves the PNG QR code used at pickup handover.
func (h *FoodOfferHandler) GetPickupQR(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	pngBytes, err := h.uc.GeneratePickupQR(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

// UploadImage stores the offer image.
func (h *FoodOfferHandler) UploadImage(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read image body")
	}
	if len(data) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Empty image body")
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.uc.UploadImage(c.Request().Context(), offerID, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"key": key}, "Image uploaded successfully")
}

// GetImage serves the stored offer image.
func (h *FoodOfferHandler) GetImage(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food offer id")
	}

	image, err := h.uc.GetImage(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}
