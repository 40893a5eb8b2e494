package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodOfferModel mirrors the 'food_offers' table.
type FoodOfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	Datetime    time.Time
	Reserved    bool       `gorm:"not null;default:false"`
	PickedUp    bool       `gorm:"not null;default:false"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reservations []ReservationModel `gorm:"foreignKey:FoodOfferID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodOfferModel) TableName() string {
	return "food_offers"
}
