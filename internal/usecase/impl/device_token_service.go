package impl

import (
	"context"
	"log/slog"

	deliverycontext "shareplate/internal/delivery/context"
	"shareplate/internal/domain/entity"
	"shareplate/internal/domain/repository"
	"shareplate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceTokenService implements the DeviceTokenUsecase interface.
type deviceTokenService struct {
	tokenRepo repository.DeviceTokenRepository
	logger    *slog.Logger
}

// DeviceTokenServiceParams holds dependencies for DeviceTokenService, injected by Fx.
type DeviceTokenServiceParams struct {
	fx.In

	TokenRepo repository.DeviceTokenRepository
	Logger    *slog.Logger
}

// NewDeviceTokenService is the constructor for deviceTokenService.
func NewDeviceTokenService(params DeviceTokenServiceParams) usecase.DeviceTokenUsecase {
	return &deviceTokenService{
		tokenRepo: params.TokenRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a device token. Registering the same token value twice
// returns the existing row instead of creating a duplicate.
func (srv *deviceTokenService) Register(ctx context.Context, token string) (*entity.DeviceToken, error) {
	existing, err := srv.tokenRepo.FindByToken(ctx, token)
	if err == nil {
		srv.log(ctx).Debug("Device token already registered", slog.Any("tokenID", existing.ID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrDeviceTokenNotFound) {
		return nil, errors.Wrap(err, "failed to look up device token")
	}

	registration := &entity.DeviceToken{Token: token}
	if err := srv.tokenRepo.Create(ctx, registration); err != nil {
		srv.log(ctx).Error("Failed to register device token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register device token")
	}

	srv.log(ctx).Debug("Device token registered", slog.Any("tokenID", registration.ID))

	return registration, nil
}
