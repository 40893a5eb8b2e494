// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"shareplate/config"
	"shareplate/internal/domain/entity"
	"shareplate/internal/domain/service"
)

const defaultTokenLifetime = time.Hour * 24

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing access tokens.
	lifetime time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	lifetime := defaultTokenLifetime
	if cfg.Auth != nil && cfg.Auth.TokenLifetime > 0 {
		lifetime = cfg.Auth.TokenLifetime
	}

	return &jwtService{
		secret:   cfg.SecretKey.Access,
		lifetime: lifetime,
	}, nil
}

// GenerateToken creates a signed access token carrying the user's identity.
func (s *jwtService) GenerateToken(identity entity.Identity) (string, error) {
	userID, err := uuid.Parse(identity.Subject)
	if err != nil {
		return "", errors.Wrap(err, "parse identity subject")
	}

	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
