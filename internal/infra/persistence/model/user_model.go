package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	DeviceToken  string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FoodOffers []FoodOfferModel `gorm:"foreignKey:CreatedBy"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
