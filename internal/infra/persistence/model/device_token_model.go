package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel mirrors the 'device_tokens' table. Tokens are deduplicated
// by value, so the same token registered twice keeps a single row.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string    `gorm:"type:varchar(512);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
