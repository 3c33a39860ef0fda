package badge

import (
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/geo"
)

// Badge is the catalog projection read by validation and listing. The catalog owns it.
type Badge struct {
	ID          string
	Name        string
	Description string
	Image       string
	Location    Location
	Rarity      Rarity
	IsActive    bool
	CreatedAt   time.Time
}

type Location struct {
	Name        string
	Coordinates *Coordinates
	// QRCode is the static token printed at the site. Empty for dynamic-only badges.
	QRCode string
}

type Coordinates struct {
	Longitude float64
	Latitude  float64
}

func (c Coordinates) Point() geo.Point {
	return geo.Point{Lat: c.Latitude, Lng: c.Longitude}
}

// Geofenced reports whether the badge carries usable coordinates.
func (b *Badge) Geofenced() bool {
	return b.Location.Coordinates != nil && b.Location.Coordinates.Point().Valid()
}
