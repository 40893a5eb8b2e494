// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserFirstName(ctx context.Context, id uuid.UUID) (string, error)

	// UpdateDeviceToken replaces the push token of an existing user.
	// A missing user yields a not-found error.
	UpdateDeviceToken(ctx context.Context, userID uuid.UUID, deviceToken string) error
}
