package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// reservationServiceMocks bundles the mocked dependencies of a reservationService.
type reservationServiceMocks struct {
	txManager       *mockRepo.MockTransactionManager
	reservationRepo *mockRepo.MockReservationRepository
	offerRepo       *mockRepo.MockFoodOfferRepository
	eventPublisher  *mockSvc.MockEventPublisher
}

// createTestReservationService builds a reservationService with all dependencies mocked.
func createTestReservationService(t *testing.T) (usecase.ReservationUsecase, *reservationServiceMocks) {
	t.Helper()

	mocks := &reservationServiceMocks{
		txManager:       mockRepo.NewMockTransactionManager(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		offerRepo:       mockRepo.NewMockFoodOfferRepository(t),
		eventPublisher:  mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewReservationService(ReservationServiceParams{
		TxManager:       mocks.txManager,
		ReservationRepo: mocks.reservationRepo,
		EventPublisher:  mocks.eventPublisher,
		Logger:          logger,
	})

	return svc, mocks
}

// passThroughReservationTx makes the transaction manager run the given
// function against the bundled repository mocks.
func passThroughReservationTx(t *testing.T, mocks *reservationServiceMocks) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReservationRepo().Return(mocks.reservationRepo).Maybe()
	factory.EXPECT().FoodOfferRepo().Return(mocks.offerRepo).Maybe()

	mocks.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()
	reserverID := uuid.New()
	offerID := uuid.New()

	t.Run("reserves the offer and publishes an event", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
			func(_ context.Context, reservation *entity.Reservation) error {
				reservation.ID = uuid.New()

				return nil
			})
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, patch *repository.FoodOfferPatch) error {
				require.NotNil(t, patch.Reserved)
				assert.True(t, *patch.Reserved)

				return nil
			})
		mocks.eventPublisher.EXPECT().PublishReservationEvent(ctx, mock.MatchedBy(func(event *service.ReservationEvent) bool {
			return event.ReservedBy == reserverID.String() && event.FoodOfferID == offerID.String()
		})).Return(nil)

		reservation, err := svc.Create(ctx, &usecase.CreateReservationInput{
			ReservedBy:  reserverID,
			FoodOfferID: &offerID,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, reservation.ID)
		assert.False(t, reservation.Timestamp.IsZero())
	})

	t.Run("keeps an explicit claim timestamp", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		claimedAt := time.Date(2025, 5, 12, 18, 30, 0, 0, time.UTC)

		mocks.reservationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).Return(nil)
		mocks.eventPublisher.EXPECT().PublishReservationEvent(ctx, mock.Anything).Return(nil)

		reservation, err := svc.Create(ctx, &usecase.CreateReservationInput{
			ReservedBy:  reserverID,
			FoodOfferID: &offerID,
			Timestamp:   claimedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, claimedAt, reservation.Timestamp)
	})

	t.Run("rolls up a missing offer to not found", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).Return(repository.ErrFoodOfferNotFound)

		reservation, err := svc.Create(ctx, &usecase.CreateReservationInput{
			ReservedBy:  reserverID,
			FoodOfferID: &offerID,
		})

		require.Error(t, err)
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})

	t.Run("succeeds even when the event cannot be published", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).Return(nil)
		mocks.eventPublisher.EXPECT().PublishReservationEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

		reservation, err := svc.Create(ctx, &usecase.CreateReservationInput{
			ReservedBy:  reserverID,
			FoodOfferID: &offerID,
		})

		require.NoError(t, err)
		require.NotNil(t, reservation)
	})

	t.Run("accepts a dangling reservation without an offer", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.eventPublisher.EXPECT().PublishReservationEvent(ctx, mock.MatchedBy(func(event *service.ReservationEvent) bool {
			return event.FoodOfferID == ""
		})).Return(nil)

		reservation, err := svc.Create(ctx, &usecase.CreateReservationInput{ReservedBy: reserverID})

		require.NoError(t, err)
		require.NotNil(t, reservation)
	})
}

func TestReservationService_GetByID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("returns the reservation", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)

		mocks.reservationRepo.EXPECT().FindByID(ctx, reservationID).Return(&entity.Reservation{ID: reservationID}, nil)

		reservation, err := svc.GetByID(ctx, reservationID)

		require.NoError(t, err)
		assert.Equal(t, reservationID, reservation.ID)
	})

	t.Run("maps a missing reservation to not found", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)

		mocks.reservationRepo.EXPECT().FindByID(ctx, reservationID).Return(nil, repository.ErrReservationNotFound)

		_, err := svc.GetByID(ctx, reservationID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}

func TestReservationService_ListByReserver(t *testing.T) {
	ctx := context.Background()
	reserverID := uuid.New()

	svc, mocks := createTestReservationService(t)

	mocks.reservationRepo.EXPECT().FindByReserver(ctx, reserverID).Return([]*entity.Reservation{
		{ID: uuid.New(), ReservedBy: reserverID},
	}, nil)

	reservations, err := svc.ListByReserver(ctx, reserverID)

	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestReservationService_Update(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("forwards the patch", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)

		pickup := time.Date(2025, 5, 13, 12, 0, 0, 0, time.UTC)
		accepted := true

		mocks.reservationRepo.EXPECT().UpdateByID(ctx, reservationID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, patch *repository.ReservationPatch) error {
				require.NotNil(t, patch.TimeOfPickup)
				assert.Equal(t, pickup, *patch.TimeOfPickup)
				require.NotNil(t, patch.Accepted)
				assert.True(t, *patch.Accepted)

				return nil
			})

		err := svc.Update(ctx, reservationID, &usecase.UpdateReservationInput{
			TimeOfPickup: &pickup,
			Accepted:     &accepted,
		})

		require.NoError(t, err)
	})

	t.Run("maps a missing reservation to not found", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)

		mocks.reservationRepo.EXPECT().UpdateByID(ctx, reservationID, mock.Anything).Return(repository.ErrReservationNotFound)

		err := svc.Update(ctx, reservationID, &usecase.UpdateReservationInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}

func TestReservationService_Delete(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	offerID := uuid.New()

	t.Run("deletes the reservation and frees the offer", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().FindByID(ctx, reservationID).Return(&entity.Reservation{
			ID:          reservationID,
			FoodOfferID: &offerID,
		}, nil)
		mocks.reservationRepo.EXPECT().DeleteByID(ctx, reservationID).Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, patch *repository.FoodOfferPatch) error {
				require.NotNil(t, patch.Reserved)
				assert.False(t, *patch.Reserved)

				return nil
			})

		require.NoError(t, svc.Delete(ctx, reservationID))
	})

	t.Run("tolerates an already deleted offer", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().FindByID(ctx, reservationID).Return(&entity.Reservation{
			ID:          reservationID,
			FoodOfferID: &offerID,
		}, nil)
		mocks.reservationRepo.EXPECT().DeleteByID(ctx, reservationID).Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).Return(repository.ErrFoodOfferNotFound)

		require.NoError(t, svc.Delete(ctx, reservationID))
	})

	t.Run("maps a missing reservation to not found", func(t *testing.T) {
		svc, mocks := createTestReservationService(t)
		passThroughReservationTx(t, mocks)

		mocks.reservationRepo.EXPECT().FindByID(ctx, reservationID).Return(nil, repository.ErrReservationNotFound)

		err := svc.Delete(ctx, reservationID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}
