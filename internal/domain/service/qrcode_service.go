// Package service defines capability interfaces the domain depends on.
package service

import "campus/internal/domain/entity"

// QRCodeService generates scannable locator codes for catalog places.
type QRCodeService interface {
	// GeneratePlaceQR returns a PNG QR code encoding a maps URL pointing
	// at the place's coordinates.
	GeneratePlaceQR(place *entity.Place) ([]byte, error)
}
