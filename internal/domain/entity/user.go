// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The password is stored only as a salted hash and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName,omitempty"`
	Address      string    `json:"address,omitempty"`
	DeviceToken  string    `json:"deviceToken,omitempty"` // Push token of the user's current device; empty when none registered.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the reduced projection of a User that a session token carries.
// Subject is the stable subject identifier, the stringified user id.
type Identity struct {
	Subject string    `json:"subject"`
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
}

// Identity projects the user into its minimal token-facing profile.
func (u *User) Identity() Identity {
	return Identity{
		Subject: u.ID.String(),
		ID:      u.ID,
		Email:   u.Email,
	}
}
