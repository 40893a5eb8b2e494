package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table.
type ReservationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Timestamp    time.Time `gorm:"not null"`
	TimeOfPickup *time.Time
	Accepted     bool       `gorm:"not null;default:false"`
	ReservedBy   uuid.UUID  `gorm:"type:uuid;not null;index"`
	FoodOfferID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
