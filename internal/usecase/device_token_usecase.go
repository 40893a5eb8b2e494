package usecase

import (
	"context"

	"shareplate/internal/domain/entity"
)

// DeviceTokenUsecase defines the operations for standalone push token registrations.
type DeviceTokenUsecase interface {
	// Register stores a device token, reusing the existing registration when
	// the same token value was seen before.
	Register(ctx context.Context, token string) (*entity.DeviceToken, error)
}
