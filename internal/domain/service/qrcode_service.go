package service

import "github.com/google/uuid"

// QRCodeService generates and parses per-location signage QR codes.
type QRCodeService interface {
	// GenerateLocationQR renders a PNG QR code encoding the location id.
	GenerateLocationQR(locationID uuid.UUID) ([]byte, error)

	// ParseLocationQR extracts the location id from scanned QR data.
	ParseLocationQR(qrData string) (uuid.UUID, error)
}
