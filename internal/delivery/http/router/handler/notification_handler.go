package handler

import (
	"log/slog"
	"net/http"

	"shareplate/internal/delivery/http/response"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for push notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendPushNotificationRequest represents the request body for a push
// notification. ID names the food offer whose creator is notified.
type SendPushNotificationRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// SendPushNotification notifies the creator of a food offer.
// Delivery problems are logged server-side; the endpoint reports success
// either way so callers cannot probe for offers, users, or tokens.
func (h *NotificationHandler) SendPushNotification(c echo.Context) error {
	var req SendPushNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Never returns an error by contract.
	_ = h.uc.SendOfferNotification(c.Request().Context(), &usecase.PushNotificationInput{
		OfferID: req.ID,
		Title:   req.Title,
		Body:    req.Body,
	})

	return response.Success(c, http.StatusOK, nil, "Notification accepted")
}
