package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shareplate/config"
	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/domain/service"
	mockRepo "shareplate/internal/mocks/repository"
	mockSvc "shareplate/internal/mocks/service"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createTestNotificationService builds a notificationService with all
// dependencies mocked and the default topic.
func createTestNotificationService(t *testing.T) (*notificationService, *mockRepo.MockFoodOfferRepository, *mockRepo.MockUserRepository, *mockSvc.MockPushSender) {
	t.Helper()

	offerRepo := mockRepo.NewMockFoodOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(NotificationServiceParams{
		OfferRepo:  offerRepo,
		UserRepo:   userRepo,
		PushSender: pushSender,
		Logger:     logger,
	})

	return svc.(*notificationService), offerRepo, userRepo, pushSender
}

func TestNotificationService_SendOfferNotification(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	creatorID := uuid.New()

	input := &usecase.PushNotificationInput{
		OfferID: offerID,
		Title:   "Offer reserved",
		Body:    "Somebody reserved your bread",
	}

	offer := &entity.FoodOffer{
		ID:        offerID,
		Name:      "Bread",
		CreatedBy: &creatorID,
	}

	t.Run("delivers to the creator's device", func(t *testing.T) {
		svc, offerRepo, userRepo, pushSender := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("fcm-token-1", nil)
		pushSender.EXPECT().Send(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Topic == defaultPushTopic &&
				msg.Title == "Offer reserved" &&
				msg.Body == "Somebody reserved your bread"
		}), "fcm-token-1").Return(&service.PushResult{Sent: []string{"fcm-token-1"}}, nil)

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})

	t.Run("reports success when the offer does not exist", func(t *testing.T) {
		svc, offerRepo, _, _ := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrFoodOfferNotFound)

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})

	t.Run("reports success when the offer has no creator", func(t *testing.T) {
		svc, offerRepo, _, _ := createTestNotificationService(t)

		orphaned := &entity.FoodOffer{ID: offerID, Name: "Bread"}
		offerRepo.EXPECT().FindByID(ctx, offerID).Return(orphaned, nil)

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})

	t.Run("reports success when the creator has no device token", func(t *testing.T) {
		svc, offerRepo, userRepo, _ := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("", nil)

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})

	t.Run("reports success when the provider fails", func(t *testing.T) {
		svc, offerRepo, userRepo, pushSender := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("fcm-token-1", nil)
		pushSender.EXPECT().Send(ctx, mock.Anything, "fcm-token-1").Return(nil, errors.New("provider unreachable"))

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})

	t.Run("reports success without a configured provider", func(t *testing.T) {
		offerRepo := mockRepo.NewMockFoodOfferRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

		svc := NewNotificationService(NotificationServiceParams{
			OfferRepo: offerRepo,
			UserRepo:  userRepo,
			Logger:    logger,
		})

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("fcm-token-1", nil)

		err := svc.SendOfferNotification(ctx, input)

		require.NoError(t, err)
	})
}

func TestNotificationService_Dispatch(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	creatorID := uuid.New()

	input := &usecase.PushNotificationInput{
		OfferID: offerID,
		Title:   "Offer reserved",
		Body:    "Somebody reserved your bread",
	}

	offer := &entity.FoodOffer{
		ID:        offerID,
		Name:      "Bread",
		CreatedBy: &creatorID,
	}

	t.Run("classifies a missing offer", func(t *testing.T) {
		svc, offerRepo, _, _ := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrFoodOfferNotFound)

		err := svc.dispatch(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
		assert.Contains(t, err.Error(), "food offer not found for ID: "+offerID.String())
	})

	t.Run("classifies a missing creator", func(t *testing.T) {
		svc, offerRepo, _, _ := createTestNotificationService(t)

		orphaned := &entity.FoodOffer{ID: offerID, Name: "Bread"}
		offerRepo.EXPECT().FindByID(ctx, offerID).Return(orphaned, nil)

		err := svc.dispatch(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrOfferCreatorMissing)
		assert.Contains(t, err.Error(), "createdBy is null for the food offer")
	})

	t.Run("classifies a missing device token", func(t *testing.T) {
		svc, offerRepo, userRepo, _ := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("", nil)

		err := svc.dispatch(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
		assert.Contains(t, err.Error(), "device token not found for user ID: "+creatorID.String())
	})

	t.Run("classifies a vanished creator as a missing token", func(t *testing.T) {
		svc, offerRepo, userRepo, _ := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("", repository.ErrUserNotFound)

		err := svc.dispatch(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
	})

	t.Run("classifies a per-token rejection", func(t *testing.T) {
		svc, offerRepo, userRepo, pushSender := createTestNotificationService(t)

		offerRepo.EXPECT().FindByID(ctx, offerID).Return(offer, nil)
		userRepo.EXPECT().FindDeviceTokenByID(ctx, creatorID).Return("fcm-token-1", nil)
		pushSender.EXPECT().Send(ctx, mock.Anything, "fcm-token-1").Return(&service.PushResult{
			Failed: []service.PushFailure{{Token: "fcm-token-1", Reason: "unregistered"}},
		}, nil)

		err := svc.dispatch(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrPushSendFailed)
		assert.Contains(t, err.Error(), "unregistered")
	})
}

func TestNotificationService_Topic(t *testing.T) {
	offerRepo := mockRepo.NewMockFoodOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(NotificationServiceParams{
		OfferRepo: offerRepo,
		UserRepo:  userRepo,
		Config:    &config.Config{Firebase: &config.FirebaseConfig{Topic: "custom.topic"}},
		Logger:    logger,
	})

	assert.Equal(t, "custom.topic", svc.(*notificationService).topic)
}
