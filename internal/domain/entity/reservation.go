// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a claim by one user on one food offer.
type Reservation struct {
	ID           uuid.UUID  `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`              // When the claim was made.
	TimeOfPickup *time.Time `json:"timeOfPickup,omitempty"` // Agreed pickup time, once negotiated.
	Accepted     bool       `json:"accepted"`
	ReservedBy   uuid.UUID  `json:"reservedBy"`
	FoodOfferID  *uuid.UUID `json:"foodOfferId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
