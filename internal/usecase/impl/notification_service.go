package impl

import (
	"context"
	"log/slog"

	"shareplate/config"
	deliverycontext "shareplate/internal/delivery/context"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/domain/service"
	"shareplate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPushTopic is used when no topic is configured.
const defaultPushTopic = "nl.fontys.prj423.group2"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	offerRepo  repository.FoodOfferRepository
	userRepo   repository.UserRepository
	pushSender service.PushSender
	topic      string
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OfferRepo  repository.FoodOfferRepository
	UserRepo   repository.UserRepository
	PushSender service.PushSender `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	topic := defaultPushTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.Topic != "" {
		topic = params.Config.Firebase.Topic
	}

	return &notificationService{
		offerRepo:  params.OfferRepo,
		userRepo:   params.UserRepo,
		pushSender: params.PushSender,
		topic:      topic,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOfferNotification notifies the creator of a food offer.
//
// This is a fire-and-forget boundary: every dispatch failure is logged here
// and absorbed, and the method reports success to the caller regardless of
// the outcome.
func (srv *notificationService) SendOfferNotification(ctx context.Context, input *usecase.PushNotificationInput) error {
	if err := srv.dispatch(ctx, input); err != nil {
		attrs := []slog.Attr{
			slog.String("offerID", input.OfferID.String()),
			slog.Any("error", err),
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, slog.String("errorCode", appErr.ErrorCode()))
		}

		srv.log(ctx).LogAttrs(ctx, slog.LevelError, "Failed to send push notification", attrs...)
	}

	return nil
}

// dispatch performs the actual notification pipeline and reports typed errors.
func (srv *notificationService) dispatch(ctx context.Context, input *usecase.PushNotificationInput) error {
	// 1. Build the provider message up front.
	msg := &service.PushMessage{
		Topic: srv.topic,
		Title: input.Title,
		Body:  input.Body,
	}

	// 2. The notification targets the creator of the referenced offer.
	offer, err := srv.offerRepo.FindByID(ctx, input.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodOfferNotFound) {
			return errors.Wrapf(domainerrors.ErrFoodOfferNotFound, "food offer not found for ID: %s", input.OfferID)
		}

		return errors.Wrap(err, "failed to load food offer for notification")
	}

	// 3. Orphaned offers have nobody to notify.
	if offer.CreatedBy == nil {
		return errors.Wrap(domainerrors.ErrOfferCreatorMissing, "createdBy is null for the food offer")
	}

	// 4. Resolve the creator's registered device token.
	token, err := srv.userRepo.FindDeviceTokenByID(ctx, *offer.CreatedBy)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrDeviceTokenNotFound, "device token not found for user ID: %s", offer.CreatedBy)
		}

		return errors.Wrap(err, "failed to load device token for notification")
	}
	if token == "" {
		return errors.Wrapf(domainerrors.ErrDeviceTokenNotFound, "device token not found for user ID: %s", offer.CreatedBy)
	}

	// 5. Hand the message to the provider. No retries either way.
	if srv.pushSender == nil {
		return errors.Wrap(domainerrors.ErrPushSendFailed, "push provider not configured")
	}

	result, err := srv.pushSender.Send(ctx, msg, token)
	if err != nil {
		return errors.Wrap(err, "push provider send failed")
	}

	if len(result.Failed) > 0 {
		return errors.Wrapf(domainerrors.ErrPushSendFailed, "provider rejected token: %s", result.Failed[0].Reason)
	}

	srv.log(ctx).Debug("Push notification sent",
		slog.String("offerID", input.OfferID.String()),
		slog.Int("sentCount", len(result.Sent)),
	)

	return nil
}
