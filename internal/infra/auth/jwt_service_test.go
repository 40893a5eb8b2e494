package auth

import (
	"testing"

	"shareplate/config"
	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access string `json:"access" yaml:"access"`
		}{
			Access: secret,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Test data
	userID := uuid.New()
	identity := entity.Identity{
		Subject: userID.String(),
		ID:      userID,
		Email:   "alice@example.com",
	}

	// Generate token
	token, err := jwtService.GenerateToken(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate token
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("first_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(entity.Identity{
		Subject: userID.String(),
		ID:      userID,
		Email:   "alice@example.com",
	})
	assert.NoError(t, err)

	otherService, err := NewJWTService(testConfig("second_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig("")

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
