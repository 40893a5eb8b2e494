// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"shareplate/internal/domain/entity"
)

// ErrDeviceTokenNotFound is returned when a device token registration is not found.
var ErrDeviceTokenNotFound = errors.New("device token not found")

// DeviceTokenRepository defines the operations for standalone device token registrations.
type DeviceTokenRepository interface {
	// Create persists a new device token registration.
	Create(ctx context.Context, token *entity.DeviceToken) error

	// FindByToken retrieves a registration by its token value.
	FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error)
}
