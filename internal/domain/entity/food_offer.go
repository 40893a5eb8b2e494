// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodOffer represents a posted item of surplus food available for
// reservation and pickup.
type FoodOffer struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image"`    // Object key of the offer image in the blob bucket, or an inline data URL.
	Location    string     `json:"location"` // Free-form pickup address; coordinates are resolved on demand.
	Datetime    time.Time  `json:"datetime"`
	Reserved    bool       `json:"reserved"`
	PickedUp    bool       `json:"pickedUp"`
	CreatedBy   *uuid.UUID `json:"createdBy,omitempty"` // May be nil for orphaned offers whose creator was removed.
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
