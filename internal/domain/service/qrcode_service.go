package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services.
type QRCodeService interface {
	// GeneratePickupQR generates a QR code identifying a food offer for pickup handover.
	GeneratePickupQR(offerID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the food offer ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
