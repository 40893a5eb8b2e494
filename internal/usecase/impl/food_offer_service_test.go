package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	mockRepo "shareplate/internal/mocks/repository"
	mockSvc "shareplate/internal/mocks/service"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// foodOfferServiceMocks bundles the mocked dependencies of a foodOfferService.
type foodOfferServiceMocks struct {
	offerRepo       *mockRepo.MockFoodOfferRepository
	reservationRepo *mockRepo.MockReservationRepository
	geocoder        *mockSvc.MockGeocoder
	qrcodeService   *mockSvc.MockQRCodeService
	objectStore     *mockSvc.MockObjectStore
}

// createTestFoodOfferService builds a foodOfferService with all dependencies mocked.
func createTestFoodOfferService(t *testing.T) (usecase.FoodOfferUsecase, *foodOfferServiceMocks) {
	t.Helper()

	mocks := &foodOfferServiceMocks{
		offerRepo:       mockRepo.NewMockFoodOfferRepository(t),
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		geocoder:        mockSvc.NewMockGeocoder(t),
		qrcodeService:   mockSvc.NewMockQRCodeService(t),
		objectStore:     mockSvc.NewMockObjectStore(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewFoodOfferService(FoodOfferServiceParams{
		OfferRepo:       mocks.offerRepo,
		ReservationRepo: mocks.reservationRepo,
		Geocoder:        mocks.geocoder,
		QRCodeService:   mocks.qrcodeService,
		ObjectStore:     mocks.objectStore,
		Logger:          logger,
	})

	return svc, mocks
}

func TestFoodOfferService_Create(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()

	svc, mocks := createTestFoodOfferService(t)

	mocks.offerRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, offer *entity.FoodOffer) error {
			offer.ID = uuid.New()

			return nil
		})

	offer, err := svc.Create(ctx, &usecase.CreateFoodOfferInput{
		Name:      "Bread",
		Location:  "Rachelsmolen 1, Eindhoven",
		Datetime:  time.Now(),
		CreatedBy: &creatorID,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, offer.ID)
	assert.Equal(t, "Bread", offer.Name)
	assert.False(t, offer.Reserved)
	assert.False(t, offer.PickedUp)
}

func TestFoodOfferService_GetByID(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("returns the offer", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID, Name: "Bread"}, nil)

		offer, err := svc.GetByID(ctx, offerID)

		require.NoError(t, err)
		assert.Equal(t, offerID, offer.ID)
	})

	t.Run("maps a missing offer to not found", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrFoodOfferNotFound)

		offer, err := svc.GetByID(ctx, offerID)

		require.Error(t, err)
		assert.Nil(t, offer)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})
}

func TestFoodOfferService_List(t *testing.T) {
	ctx := context.Background()

	svc, mocks := createTestFoodOfferService(t)

	offers := []*entity.FoodOffer{
		{ID: uuid.New(), Name: "Bread"},
		{ID: uuid.New(), Name: "Soup"},
	}
	mocks.offerRepo.EXPECT().Find(ctx).Return(offers, nil)
	mocks.offerRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFoodOfferService_Patch(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("forwards only the set fields", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		newName := "Fresh bread"
		reserved := true

		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, patch *repository.FoodOfferPatch) error {
				require.NotNil(t, patch.Name)
				assert.Equal(t, "Fresh bread", *patch.Name)
				require.NotNil(t, patch.Reserved)
				assert.True(t, *patch.Reserved)
				assert.Nil(t, patch.Description)
				assert.Nil(t, patch.Datetime)

				return nil
			})

		err := svc.Patch(ctx, offerID, &usecase.PatchFoodOfferInput{Name: &newName, Reserved: &reserved})

		require.NoError(t, err)
	})

	t.Run("maps a missing offer to not found", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).Return(repository.ErrFoodOfferNotFound)

		err := svc.Patch(ctx, offerID, &usecase.PatchFoodOfferInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})
}

func TestFoodOfferService_Replace(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	svc, mocks := createTestFoodOfferService(t)

	mocks.offerRepo.EXPECT().ReplaceByID(ctx, offerID, mock.Anything).RunAndReturn(
		func(_ context.Context, _ uuid.UUID, offer *entity.FoodOffer) error {
			assert.Equal(t, offerID, offer.ID)
			assert.Equal(t, "Soup", offer.Name)
			assert.True(t, offer.PickedUp)

			return nil
		})

	err := svc.Replace(ctx, offerID, &usecase.ReplaceFoodOfferInput{Name: "Soup", PickedUp: true})

	require.NoError(t, err)
}

func TestFoodOfferService_Delete(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("deletes the offer", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().DeleteByID(ctx, offerID).Return(nil)

		require.NoError(t, svc.Delete(ctx, offerID))
	})

	t.Run("maps a missing offer to not found", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().DeleteByID(ctx, offerID).Return(repository.ErrFoodOfferNotFound)

		err := svc.Delete(ctx, offerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})
}

func TestFoodOfferService_GetReservation(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("returns the attached reservation", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		reservation := &entity.Reservation{ID: uuid.New(), FoodOfferID: &offerID}
		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID}, nil)
		mocks.reservationRepo.EXPECT().FindByOffer(ctx, offerID).Return(reservation, nil)

		found, err := svc.GetReservation(ctx, offerID)

		require.NoError(t, err)
		assert.Equal(t, reservation, found)
	})

	t.Run("distinguishes a missing offer from a missing reservation", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrFoodOfferNotFound)

		_, err := svc.GetReservation(ctx, offerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})

	t.Run("maps an unreserved offer to reservation not found", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID}, nil)
		mocks.reservationRepo.EXPECT().FindByOffer(ctx, offerID).Return(nil, repository.ErrReservationNotFound)

		_, err := svc.GetReservation(ctx, offerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
	})
}

func TestFoodOfferService_GeocodeAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the coordinates latitude first", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		// orb points carry longitude first.
		mocks.geocoder.EXPECT().Geocode(ctx, "Rachelsmolen 1, Eindhoven").Return(orb.Point{5.4697, 51.4416}, nil)

		coordinates, err := svc.GeocodeAddress(ctx, "Rachelsmolen 1, Eindhoven")

		require.NoError(t, err)
		assert.Equal(t, "51.4416,5.4697", coordinates)
	})

	t.Run("wraps geocoder failures", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.geocoder.EXPECT().Geocode(ctx, "nowhere").Return(orb.Point{}, errors.New("no results for address"))

		coordinates, err := svc.GeocodeAddress(ctx, "nowhere")

		require.Error(t, err)
		assert.Empty(t, coordinates)
		assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
	})

	t.Run("fails without a configured geocoder", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
		svc := NewFoodOfferService(FoodOfferServiceParams{
			OfferRepo:       mockRepo.NewMockFoodOfferRepository(t),
			ReservationRepo: mockRepo.NewMockReservationRepository(t),
			Logger:          logger,
		})

		_, err := svc.GeocodeAddress(ctx, "Rachelsmolen 1, Eindhoven")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
	})
}

func TestFoodOfferService_GeneratePickupQR(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	t.Run("renders the code for an existing offer", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID}, nil)
		mocks.qrcodeService.EXPECT().GeneratePickupQR(offerID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		pngBytes, err := svc.GeneratePickupQR(ctx, offerID)

		require.NoError(t, err)
		assert.NotEmpty(t, pngBytes)
	})

	t.Run("refuses a missing offer", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrFoodOfferNotFound)

		_, err := svc.GeneratePickupQR(ctx, offerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFoodOfferNotFound)
	})
}

func TestFoodOfferService_OfferImage(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	imageKey := fmt.Sprintf("offers/%s/image", offerID)

	t.Run("stores the image and records its key", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID}, nil)
		mocks.objectStore.EXPECT().Put(ctx, imageKey, []byte("png-bytes"), "image/png").Return(nil)
		mocks.offerRepo.EXPECT().UpdateByID(ctx, offerID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, patch *repository.FoodOfferPatch) error {
				require.NotNil(t, patch.Image)
				assert.Equal(t, imageKey, *patch.Image)

				return nil
			})

		key, err := svc.UploadImage(ctx, offerID, []byte("png-bytes"), "image/png")

		require.NoError(t, err)
		assert.Equal(t, imageKey, key)
	})

	t.Run("serves the stored image", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID, Image: imageKey}, nil)
		mocks.objectStore.EXPECT().Get(ctx, imageKey).Return([]byte("png-bytes"), "image/png", nil)

		image, err := svc.GetImage(ctx, offerID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), image.Data)
		assert.Equal(t, "image/png", image.ContentType)
	})

	t.Run("reports not found for an offer without an image", func(t *testing.T) {
		svc, mocks := createTestFoodOfferService(t)

		mocks.offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.FoodOffer{ID: offerID}, nil)

		image, err := svc.GetImage(ctx, offerID)

		require.Error(t, err)
		assert.Nil(t, image)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
