package usecase

import (
	"context"
	"time"

	"shareplate/internal/domain/entity"
	"shareplate/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateFoodOfferInput defines the data required to publish a new food offer.
type CreateFoodOfferInput struct {
	Name        string
	Description string
	Image       string
	Location    string
	Datetime    time.Time
	CreatedBy   *uuid.UUID
}

// PatchFoodOfferInput carries a partial update. Nil fields are left untouched.
type PatchFoodOfferInput struct {
	Name        *string
	Description *string
	Image       *string
	Location    *string
	Datetime    *time.Time
	Reserved    *bool
	PickedUp    *bool
}

// ReplaceFoodOfferInput defines a full replacement of an offer's mutable fields.
type ReplaceFoodOfferInput struct {
	Name        string
	Description string
	Image       string
	Location    string
	Datetime    time.Time
	Reserved    bool
	PickedUp    bool
	CreatedBy   *uuid.UUID
}

// OfferImage bundles stored image bytes with their content type.
type OfferImage struct {
	Data        []byte
	ContentType string
}

// FoodOfferUsecase defines the business operations around food offers.
type FoodOfferUsecase interface {
	Create(ctx context.Context, input *CreateFoodOfferInput) (*entity.FoodOffer, error)
	List(ctx context.Context) ([]*entity.FoodOffer, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOffer, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.FoodOffer, error)
	Patch(ctx context.Context, id uuid.UUID, input *PatchFoodOfferInput) error
	Replace(ctx context.Context, id uuid.UUID, input *ReplaceFoodOfferInput) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetReservation returns the reservation attached to an offer.
	GetReservation(ctx context.Context, offerID uuid.UUID) (*entity.Reservation, error)

	// GeocodeAddress resolves a free-form address into a "lat,lng" string.
	GeocodeAddress(ctx context.Context, address string) (string, error)

	// GeneratePickupQR renders the PNG QR code used at pickup handover.
	GeneratePickupQR(ctx context.Context, offerID uuid.UUID) ([]byte, error)

	// UploadImage stores the offer image and records its object key.
	UploadImage(ctx context.Context, offerID uuid.UUID, data []byte, contentType string) (string, error)

	// GetImage serves the stored offer image.
	GetImage(ctx context.Context, offerID uuid.UUID) (*OfferImage, error)
}

// PatchToRepository converts a usecase patch into the repository form.
func (p *PatchFoodOfferInput) PatchToRepository() *repository.FoodOfferPatch {
	if p == nil {
		return nil
	}

	return &repository.FoodOfferPatch{
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Location:    p.Location,
		Datetime:    p.Datetime,
		Reserved:    p.Reserved,
		PickedUp:    p.PickedUp,
	}
}
