// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReservationNotFound is returned when a reservation is not found.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationPatch carries a partial update of a reservation.
// Nil fields are left untouched.
type ReservationPatch struct {
	TimeOfPickup *time.Time
	Accepted     *bool
}

// ReservationRepository defines the standard operations for reservation persistence.
type ReservationRepository interface {
	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a single reservation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindByReserver retrieves all reservations made by the given user.
	FindByReserver(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)

	// FindByOffer retrieves the reservation attached to the given offer.
	FindByOffer(ctx context.Context, offerID uuid.UUID) (*entity.Reservation, error)

	// UpdateByID applies a partial update to a reservation.
	UpdateByID(ctx context.Context, id uuid.UUID, patch *ReservationPatch) error

	// DeleteByID removes a reservation by its ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
