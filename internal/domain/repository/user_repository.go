// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CountByEmail returns the number of users registered with the given email.
	CountByEmail(ctx context.Context, email string) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateDeviceToken replaces the stored push token of the given user.
	UpdateDeviceToken(ctx context.Context, userID uuid.UUID, deviceToken string) error

	// FindDeviceTokenByID returns the stored push token of the given user.
	// An existing user without a registered token yields an empty string.
	FindDeviceTokenByID(ctx context.Context, userID uuid.UUID) (string, error)
}
