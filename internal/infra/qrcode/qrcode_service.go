// Package qrcode renders per-location signage QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"depot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	LocationID string `json:"location_id"`
	Type       string `json:"type"`
}

const qrTypePickupLocation = "pickup_location"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLocationQR generates a QR code identifying a pickup location.
// Printed signage at the depot encodes this payload for courier apps.
func (s *qrcodeService) GenerateLocationQR(locationID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		LocationID: locationID.String(),
		Type:       qrTypePickupLocation,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLocationQR parses QR code data and returns the location ID
func (s *qrcodeService) ParseLocationQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypePickupLocation {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	locationID, err := uuid.Parse(data.LocationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return locationID, nil
}
