package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shareplate/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token.
// The registered subject is the stringified user id.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for the given identity.
	GenerateToken(identity entity.Identity) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
