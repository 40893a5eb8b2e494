package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "shareplate/internal/delivery/context"
	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/domain/service"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// foodOfferService implements the FoodOfferUsecase interface.
type foodOfferService struct {
	offerRepo       repository.FoodOfferRepository
	reservationRepo repository.ReservationRepository
	geocoder        service.Geocoder
	qrcodeService   service.QRCodeService
	objectStore     service.ObjectStore
	logger          *slog.Logger
}

// FoodOfferServiceParams holds dependencies for FoodOfferService, injected by Fx.
type FoodOfferServiceParams struct {
	fx.In

	OfferRepo       repository.FoodOfferRepository
	ReservationRepo repository.ReservationRepository
	Geocoder        service.Geocoder      `optional:"true"`
	QRCodeService   service.QRCodeService `optional:"true"`
	ObjectStore     service.ObjectStore   `optional:"true"`
	Logger          *slog.Logger
}

// NewFoodOfferService is the constructor for foodOfferService.
func NewFoodOfferService(params FoodOfferServiceParams) usecase.FoodOfferUsecase {
	return &foodOfferService{
		offerRepo:       params.OfferRepo,
		reservationRepo: params.ReservationRepo,
		geocoder:        params.Geocoder,
		qrcodeService:   params.QRCodeService,
		objectStore:     params.ObjectStore,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodOfferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new food offer.
func (srv *foodOfferService) Create(ctx context.Context, input *usecase.CreateFoodOfferInput) (*entity.FoodOffer, error) {
	offer := &entity.FoodOffer{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Location:    input.Location,
		Datetime:    input.Datetime,
		CreatedBy:   input.CreatedBy,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create food offer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create food offer")
	}

	srv.log(ctx).Debug("Food offer created", slog.Any("offerID", offer.ID))

	return offer, nil
}

// List retrieves all food offers, newest first.
func (srv *foodOfferService) List(ctx context.Context) ([]*entity.FoodOffer, error) {
	offers, err := srv.offerRepo.Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food offers")
	}

	return offers, nil
}

// Count returns the total number of food offers.
func (srv *foodOfferService) Count(ctx context.Context) (int64, error) {
	count, err := srv.offerRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count food offers")
	}

	return count, nil
}

// GetByID retrieves a single food offer.
func (srv *foodOfferService) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOffer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodOfferNotFound) {
			return nil, domainerrors.ErrFoodOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find food offer by id")
	}

	return offer, nil
}

// ListByCreator retrieves all offers created by the given user.
func (srv *foodOfferService) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.FoodOffer, error) {
	offers, err := srv.offerRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food offers by creator")
	}

	return offers, nil
}

// Patch applies a partial update to an offer.
func (srv *foodOfferService) Patch(ctx context.Context, id uuid.UUID, input *usecase.PatchFoodOfferInput) error {
	if err := srv.offerRepo.UpdateByID(ctx, id, input.PatchToRepository()); err != nil {
		if errors.Is(err, repository.ErrFoodOfferNotFound) {
			return domainerrors.ErrFoodOfferNotFound
		}

		return errors.Wrap(err, "failed to patch food offer")
	}

	return nil
}

// Replace overwrites all mutable fields of an offer.
func (srv *foodOfferService) Replace(ctx context.Context, id uuid.UUID, input *usecase.ReplaceFoodOfferInput) error {
	offer := &entity.FoodOffer{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Location:    input.Location,
		Datetime:    input.Datetime,
		Reserved:    input.Reserved,
		PickedUp:    input.PickedUp,
		CreatedBy:   input.CreatedBy,
	}

	if err := srv.offerRepo.ReplaceByID(ctx, id, offer); err != nil {
		if errors.Is(err, repository.ErrFoodOfferNotFound) {
			return domainerrors.ErrFoodOfferNotFound
		}

		return errors.Wrap(err, "failed to replace food offer")
	}

	return nil
}

// Delete removes an offer.
func (srv *foodOfferService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.offerRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFoodOfferNotFound) {
			return domainerrors.ErrFoodOfferNotFound
		}

		return errors.Wrap(err, "failed to delete food offer")
	}

	return nil
}

// GetReservation returns the reservation attached to an offer.
func (srv *foodOfferService) GetReservation(ctx context.Context, offerID uuid.UUID) (*entity.Reservation, error) {
	// Verify the offer exists so a missing offer and a missing reservation
	// are reported distinctly.
	if _, err := srv.GetByID(ctx, offerID); err != nil {
		return nil, err
	}

	reservation, err := srv.reservationRepo.FindByOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by offer")
	}

	return reservation, nil
}

// GeocodeAddress resolves a free-form address into a "lat,lng" string.
func (srv *foodOfferService) GeocodeAddress(ctx context.Context, address string) (string, error) {
	if srv.geocoder == nil {
		return "", domainerrors.ErrGeocodingFailed.WrapMessage("geocoder not configured")
	}

	point, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		srv.log(ctx).Warn("Failed to geocode address", slog.String("address", address), slog.Any("error", err))

		return "", domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	coordinates := strconv.FormatFloat(point.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(point.Lon(), 'f', -1, 64)

	return coordinates, nil
}

// GeneratePickupQR renders the PNG QR code used at pickup handover.
func (srv *foodOfferService) GeneratePickupQR(ctx context.Context, offerID uuid.UUID) ([]byte, error) {
	if srv.qrcodeService == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("qr code service not configured")
	}

	// Only existing offers get a pickup code.
	if _, err := srv.GetByID(ctx, offerID); err != nil {
		return nil, err
	}

	pngBytes, err := srv.qrcodeService.GeneratePickupQR(offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup qr code")
	}

	return pngBytes, nil
}

// UploadImage stores the offer image and records its object key on the offer.
func (srv *foodOfferService) UploadImage(ctx context.Context, offerID uuid.UUID, data []byte, contentType string) (string, error) {
	if srv.objectStore == nil {
		return "", domainerrors.ErrInternalError.WrapMessage("object store not configured")
	}

	if _, err := srv.GetByID(ctx, offerID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("offers/%s/image", offerID)
	if err := srv.objectStore.Put(ctx, key, data, contentType); err != nil {
		srv.log(ctx).Error("Failed to store offer image", slog.Any("offerID", offerID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store offer image")
	}

	if err := srv.offerRepo.UpdateByID(ctx, offerID, &repository.FoodOfferPatch{Image: &key}); err != nil {
		return "", errors.Wrap(err, "failed to record offer image key")
	}

	return key, nil
}

// GetImage serves the stored offer image.
func (srv *foodOfferService) GetImage(ctx context.Context, offerID uuid.UUID) (*usecase.OfferImage, error) {
	if srv.objectStore == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("object store not configured")
	}

	offer, err := srv.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Image == "" {
		return nil, domainerrors.ErrNotFound.WrapMessage("offer has no image")
	}

	data, contentType, err := srv.objectStore.Get(ctx, offer.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer image")
	}

	return &usecase.OfferImage{
		Data:        data,
		ContentType: contentType,
	}, nil
}
