package middleware

import (
	"net/http"
	"strings"

	"shareplate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key under which the authenticated
// user's id is stored.
const ContextKeyUserID = "userID"

// ContextKeyEmail is the echo context key under which the authenticated
// user's email is stored.
const ContextKeyEmail = "email"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
