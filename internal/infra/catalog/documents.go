package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
)

// Field names follow the documents already stored by the seed scripts.
// Coordinates are stored as [longitude, latitude].
type badgeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Location    locationDocument   `bson:"location"`
	Rarity      string             `bson:"rarity,omitempty"`
	IsActive    *bool              `bson:"isActive,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
}

type locationDocument struct {
	Name        string    `bson:"name,omitempty"`
	Address     string    `bson:"address,omitempty"`
	Coordinates []float64 `bson:"coordinates,omitempty"`
	QRCode      string    `bson:"qrCode,omitempty"`
}

type partnerDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Category      string             `bson:"category,omitempty"`
	Location      locationDocument   `bson:"location"`
	DiscountRate  float64            `bson:"discountRate"`
	MinimumBadges int                `bson:"minimumBadges"`
	Contact       string             `bson:"contact,omitempty"`
	Description   string             `bson:"description,omitempty"`
	IsActive      *bool              `bson:"isActive,omitempty"`
}

func (d locationDocument) coordinates() *badge.Coordinates {
	if len(d.Coordinates) != 2 {
		return nil
	}
	return &badge.Coordinates{Longitude: d.Coordinates[0], Latitude: d.Coordinates[1]}
}

// activeOrDefault mirrors the schema default of isActive: true.
func activeOrDefault(v *bool) bool {
	return v == nil || *v
}

func (d badgeDocument) toDomain() *badge.Badge {
	rarity, err := badge.NewRarity(d.Rarity)
	if err != nil {
		rarity = badge.RarityBronze
	}

	return &badge.Badge{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Location: badge.Location{
			Name:        d.Location.Name,
			Coordinates: d.Location.coordinates(),
			QRCode:      d.Location.QRCode,
		},
		Rarity:    rarity,
		IsActive:  activeOrDefault(d.IsActive),
		CreatedAt: d.CreatedAt,
	}
}

func (d partnerDocument) toDomain() *partner.Partner {
	return &partner.Partner{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Category: d.Category,
		Location: partner.Location{
			Name:        d.Location.Name,
			Address:     d.Location.Address,
			Coordinates: d.Location.coordinates(),
		},
		DiscountRate:  d.DiscountRate,
		MinimumBadges: d.MinimumBadges,
		Contact:       d.Contact,
		Description:   d.Description,
		IsActive:      activeOrDefault(d.IsActive),
	}
}

func fromBadge(b *badge.Badge) (badgeDocument, error) {
	doc := badgeDocument{
		Name:        b.Name,
		Description: b.Description,
		Image:       b.Image,
		Location: locationDocument{
			Name:   b.Location.Name,
			QRCode: b.Location.QRCode,
		},
		Rarity:    b.Rarity.String(),
		IsActive:  &b.IsActive,
		CreatedAt: b.CreatedAt,
	}
	if c := b.Location.Coordinates; c != nil {
		doc.Location.Coordinates = []float64{c.Longitude, c.Latitude}
	}
	if b.ID != "" {
		id, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			return badgeDocument{}, err
		}
		doc.ID = id
	}
	return doc, nil
}

func fromPartner(p *partner.Partner) (partnerDocument, error) {
	doc := partnerDocument{
		Name:     p.Name,
		Category: p.Category,
		Location: locationDocument{
			Name:    p.Location.Name,
			Address: p.Location.Address,
		},
		DiscountRate:  p.DiscountRate,
		MinimumBadges: p.MinimumBadges,
		Contact:       p.Contact,
		Description:   p.Description,
		IsActive:      &p.IsActive,
	}
	if c := p.Location.Coordinates; c != nil {
		doc.Location.Coordinates = []float64{c.Longitude, c.Latitude}
	}
	if p.ID != "" {
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return partnerDocument{}, err
		}
		doc.ID = id
	}
	return doc, nil
}
