package request

import (
	"encoding/json"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/geo"
)

// ValidateQRRequest carries the scanned payload verbatim: a JSON string for static
// codes or a JSON object for dynamic ones.
type ValidateQRRequest struct {
	QRCode   json.RawMessage `json:"qrCode" binding:"required"`
	Location *LocationInput  `json:"location"`
}

type LocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ValidateQRRequest) Point() *geo.Point {
	if r.Location == nil {
		return nil
	}
	return &geo.Point{Lat: r.Location.Latitude, Lng: r.Location.Longitude}
}

type GenerateQRRequest struct {
	BadgeID string `json:"badgeId" binding:"required"`
}
