package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shareplate/internal/domain/entity"
	"shareplate/internal/domain/repository"
	mockRepo "shareplate/internal/mocks/repository"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createTestDeviceTokenService builds a deviceTokenService with a mocked repository.
func createTestDeviceTokenService(t *testing.T) (usecase.DeviceTokenUsecase, *mockRepo.MockDeviceTokenRepository) {
	t.Helper()

	tokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDeviceTokenService(DeviceTokenServiceParams{
		TokenRepo: tokenRepo,
		Logger:    logger,
	})

	return svc, tokenRepo
}

func TestDeviceTokenService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an unseen token", func(t *testing.T) {
		svc, tokenRepo := createTestDeviceTokenService(t)

		tokenRepo.EXPECT().FindByToken(ctx, "fcm-token-1").Return(nil, repository.ErrDeviceTokenNotFound)
		tokenRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
			func(_ context.Context, token *entity.DeviceToken) error {
				token.ID = uuid.New()

				return nil
			})

		registration, err := svc.Register(ctx, "fcm-token-1")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, registration.ID)
		assert.Equal(t, "fcm-token-1", registration.Token)
	})

	t.Run("returns the existing row for a known token", func(t *testing.T) {
		svc, tokenRepo := createTestDeviceTokenService(t)

		existing := &entity.DeviceToken{ID: uuid.New(), Token: "fcm-token-1"}
		tokenRepo.EXPECT().FindByToken(ctx, "fcm-token-1").Return(existing, nil)

		registration, err := svc.Register(ctx, "fcm-token-1")

		require.NoError(t, err)
		assert.Equal(t, existing, registration)
	})

	t.Run("registering twice yields the same row", func(t *testing.T) {
		svc, tokenRepo := createTestDeviceTokenService(t)

		var stored *entity.DeviceToken
		tokenRepo.EXPECT().FindByToken(ctx, "fcm-token-1").RunAndReturn(
			func(context.Context, string) (*entity.DeviceToken, error) {
				if stored == nil {
					return nil, repository.ErrDeviceTokenNotFound
				}

				return stored, nil
			})
		tokenRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
			func(_ context.Context, token *entity.DeviceToken) error {
				token.ID = uuid.New()
				stored = token

				return nil
			})

		first, err := svc.Register(ctx, "fcm-token-1")
		require.NoError(t, err)

		second, err := svc.Register(ctx, "fcm-token-1")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("fails when the lookup fails", func(t *testing.T) {
		svc, tokenRepo := createTestDeviceTokenService(t)

		tokenRepo.EXPECT().FindByToken(ctx, "fcm-token-1").Return(nil, errors.New("connection refused"))

		registration, err := svc.Register(ctx, "fcm-token-1")

		require.Error(t, err)
		assert.Nil(t, registration)
	})

	t.Run("fails when the insert fails", func(t *testing.T) {
		svc, tokenRepo := createTestDeviceTokenService(t)

		tokenRepo.EXPECT().FindByToken(ctx, "fcm-token-1").Return(nil, repository.ErrDeviceTokenNotFound)
		tokenRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection refused"))

		registration, err := svc.Register(ctx, "fcm-token-1")

		require.Error(t, err)
		assert.Nil(t, registration)
	})
}
