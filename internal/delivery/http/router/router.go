// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shareplate/internal/delivery/http/middleware"
	"shareplate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	FoodOfferHandler    *handler.FoodOfferHandler
	ReservationHandler  *handler.ReservationHandler
	NotificationHandler *handler.NotificationHandler
	DeviceTokenHandler  *handler.DeviceTokenHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	foodOfferHandler    *handler.FoodOfferHandler
	reservationHandler  *handler.ReservationHandler
	notificationHandler *handler.NotificationHandler
	deviceTokenHandler  *handler.DeviceTokenHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		foodOfferHandler:    params.FoodOfferHandler,
		reservationHandler:  params.ReservationHandler,
		notificationHandler: params.NotificationHandler,
		deviceTokenHandler:  params.DeviceTokenHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/users/signup", r.userHandler.Signup)
	e.POST("/users/login", r.userHandler.Login)
	e.GET("/whoAmI", r.userHandler.WhoAmI, r.authMiddleware.Authenticate)

	// User routes
	e.GET("/users/:id", r.userHandler.GetUser)
	e.GET("/users/:id/food-offers", r.userHandler.GetUserFoodOffers, r.authMiddleware.Authenticate)
	e.GET("/users/:id/reservations", r.userHandler.GetUserReservations, r.authMiddleware.Authenticate)
	e.GET("/user-first-name/:id", r.userHandler.GetUserFirstName)
	e.POST("/users/update-token/:userId", r.userHandler.UpdateDeviceToken)

	// Food offer routes
	offerGroup := e.Group("/food-offers")
	{
		offerGroup.POST("", r.foodOfferHandler.Create)
		offerGroup.GET("", r.foodOfferHandler.List)
		offerGroup.GET("/count", r.foodOfferHandler.Count)
		offerGroup.POST("/convert-address-to-coordinates", r.foodOfferHandler.ConvertAddress)
		offerGroup.GET("/:id", r.foodOfferHandler.GetByID)
		offerGroup.PATCH("/:id", r.foodOfferHandler.Patch)
		offerGroup.PUT("/:id", r.foodOfferHandler.Replace)
		offerGroup.DELETE("/:id", r.foodOfferHandler.Delete)
		offerGroup.GET("/:id/reservation", r.foodOfferHandler.GetReservation)
		offerGroup.GET("/:id/qrcode", r.foodOfferHandler.GetPickupQR)
		offerGroup.POST("/:id/image", r.foodOfferHandler.UploadImage)
		offerGroup.GET("/:id/image", r.foodOfferHandler.GetImage)
	}

	// Reservation routes
	reservationGroup := e.Group("/reservations")
	{
		reservationGroup.POST("", r.reservationHandler.Create)
		reservationGroup.GET("/:id", r.reservationHandler.GetByID)
		reservationGroup.PATCH("/:id", r.reservationHandler.Patch)
		reservationGroup.DELETE("/:id", r.reservationHandler.Delete)
	}

	// Push notification dispatch
	e.POST("/send-push-notification", r.notificationHandler.SendPushNotification)

	// Standalone device token registration
	e.POST("/device-token", r.deviceTokenHandler.Register)
}
