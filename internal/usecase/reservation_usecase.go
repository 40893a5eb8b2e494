package usecase

import (
	"context"
	"time"

	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReservationInput defines the data required to reserve a food offer.
type CreateReservationInput struct {
	ReservedBy  uuid.UUID
	FoodOfferID *uuid.UUID
	Timestamp   time.Time
}

// UpdateReservationInput carries a partial update. Nil fields are left untouched.
type UpdateReservationInput struct {
	TimeOfPickup *time.Time
	Accepted     *bool
}

// ReservationUsecase defines the business operations around reservations.
type ReservationUsecase interface {
	Create(ctx context.Context, input *CreateReservationInput) (*entity.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	ListByReserver(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateReservationInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}
