// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is a standalone registration of an opaque push token issued by
// a mobile push service. Registrations are deduplicated by token value.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"deviceToken"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
