// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"shareplate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodOfferNotFound is returned when a food offer is not found.
var ErrFoodOfferNotFound = errors.New("food offer not found")

// FoodOfferPatch carries a partial update of a food offer.
// Nil fields are left untouched.
type FoodOfferPatch struct {
	Name        *string
	Description *string
	Image       *string
	Location    *string
	Datetime    *time.Time
	Reserved    *bool
	PickedUp    *bool
	CreatedBy   *uuid.UUID
}

// FoodOfferRepository defines the standard operations for food offer persistence.
type FoodOfferRepository interface {
	// Create persists a new food offer.
	Create(ctx context.Context, offer *entity.FoodOffer) error

	// FindByID retrieves a single food offer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodOffer, error)

	// Find retrieves all food offers, newest first.
	Find(ctx context.Context) ([]*entity.FoodOffer, error)

	// Count returns the total number of food offers.
	Count(ctx context.Context) (int64, error)

	// FindByCreator retrieves all offers created by the given user.
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.FoodOffer, error)

	// UpdateByID applies a partial update to an offer.
	UpdateByID(ctx context.Context, id uuid.UUID, patch *FoodOfferPatch) error

	// ReplaceByID overwrites all mutable fields of an offer.
	ReplaceByID(ctx context.Context, id uuid.UUID, offer *entity.FoodOffer) error

	// DeleteByID removes an offer by its ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
