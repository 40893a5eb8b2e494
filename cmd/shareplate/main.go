package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shareplate/config"
	"shareplate/internal/delivery"
	"shareplate/internal/delivery/http"
	httpmiddleware "shareplate/internal/delivery/http/middleware"
	"shareplate/internal/delivery/http/router/handler"
	deliverymiddleware "shareplate/internal/delivery/middleware"
	"shareplate/internal/domain/service"
	"shareplate/internal/infra/auth"
	"shareplate/internal/infra/geocoding"
	logs "shareplate/internal/infra/log"
	"shareplate/internal/infra/notification"
	"shareplate/internal/infra/persistence/postgres"
	"shareplate/internal/infra/pubsub"
	"shareplate/internal/infra/qrcode"
	"shareplate/internal/infra/storage"
	"shareplate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFoodOfferRepository,
			postgres.NewReservationRepository,
			postgres.NewDeviceTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newPushSender,
			newGeocoder,
			newQRCodeService,
			newObjectStore,
		),
	)
}

// newPushSender creates the Firebase push sender with dependency injection
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push delivery is optional
	}

	sender, err := notification.NewFirebaseSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

// newGeocoder creates the MapQuest geocoder with dependency injection
func newGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.Geocoding == nil {
		return nil, nil // Geocoding is optional
	}

	geocoder, err := geocoding.NewMapQuestGeocoder(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	return geocoder, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newObjectStore creates the blob store for offer images with dependency injection
func newObjectStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ObjectStore, error) {
	if cfg.Storage == nil {
		return nil, nil // Image storage is optional
	}

	store, err := storage.NewBlobStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create object store: %w", err)
	}

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewFoodOfferService,
			impl.NewReservationService,
			impl.NewNotificationService,
			impl.NewDeviceTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewLoggerMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewFoodOfferHandler,
			handler.NewReservationHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceTokenHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
