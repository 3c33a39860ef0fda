//go:build unit || e2e

package builder

import (
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
)

type BadgeBuilder struct {
	ID        string
	Name      string
	Location  string
	Latitude  float64
	Longitude float64
	QRCode    string
	Rarity    badge.Rarity
	IsActive  bool
	NoCoords  bool
}

// NewBadgeBuilder defaults to the Hallasan summit badge.
func NewBadgeBuilder() *BadgeBuilder {
	return &BadgeBuilder{
		ID:        "64b7f0c2e1a2b3c4d5e6f701",
		Name:      "Hallasan Summit",
		Location:  "Hallasan",
		Latitude:  33.3617,
		Longitude: 126.5312,
		QRCode:    "JEJU_HALLASAN_001",
		Rarity:    badge.RarityGold,
		IsActive:  true,
	}
}

func (b *BadgeBuilder) With(mutate func(*BadgeBuilder)) *BadgeBuilder {
	mutate(b)
	return b
}

func (b *BadgeBuilder) Build() *badge.Badge {
	out := &badge.Badge{
		ID:       b.ID,
		Name:     b.Name,
		Location: badge.Location{Name: b.Location, QRCode: b.QRCode},
		Rarity:   b.Rarity,
		IsActive: b.IsActive,
	}
	if !b.NoCoords {
		out.Location.Coordinates = &badge.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude}
	}
	return out
}

type PartnerBuilder struct {
	partner.Partner
}

func NewPartnerBuilder() *PartnerBuilder {
	return &PartnerBuilder{Partner: partner.Partner{
		ID:            "64b7f0c2e1a2b3c4d5e6f7a1",
		Name:          "Black Pork House",
		Category:      "restaurant",
		Location:      partner.Location{Name: "Jeju City", Address: "Jeju-si, Jeju-do"},
		DiscountRate:  10,
		MinimumBadges: 2,
		Contact:       "064-123-4567",
		IsActive:      true,
	}}
}

func (p *PartnerBuilder) With(mutate func(*partner.Partner)) *PartnerBuilder {
	mutate(&p.Partner)
	return p
}

func (p *PartnerBuilder) Build() *partner.Partner {
	out := p.Partner
	return &out
}
