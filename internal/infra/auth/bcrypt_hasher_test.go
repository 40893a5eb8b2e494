package auth

import (
	"testing"

	"shareplate/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasher(cost int) *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := testHasher(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := testHasher(bcrypt.MinCost)
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test garbage hash
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_CostFallsBackToDefault(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default
	hasher := testHasher(bcrypt.MaxCost + 1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	// Missing auth section likewise
	hasher = NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
