package request

import (
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/ptr"
)

type PartnerLocationInput struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (l *PartnerLocationInput) toDomain() partner.Location {
	loc := partner.Location{Name: l.Name, Address: l.Address}
	if l.Latitude != nil && l.Longitude != nil {
		loc.Coordinates = &badge.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
	}
	return loc
}

type CreatePartnerRequest struct {
	Name          string                `json:"name" binding:"required"`
	Category      string                `json:"category" binding:"required"`
	Location      *PartnerLocationInput `json:"location"`
	DiscountRate  float64               `json:"discountRate" binding:"min=0,max=100"`
	MinimumBadges int                   `json:"minimumBadges" binding:"required,min=1"`
	Contact       string                `json:"contact" binding:"required"`
	Description   string                `json:"description"`
}

func (r *CreatePartnerRequest) ToDomain() (*partner.Partner, error) {
	p := &partner.Partner{
		Name:          r.Name,
		Category:      r.Category,
		DiscountRate:  r.DiscountRate,
		MinimumBadges: r.MinimumBadges,
		Contact:       r.Contact,
		Description:   r.Description,
		IsActive:      true,
	}
	if r.Location != nil {
		p.Location = r.Location.toDomain()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdatePartnerRequest struct {
	Name          *string               `json:"name"`
	Category      *string               `json:"category"`
	Location      *PartnerLocationInput `json:"location"`
	DiscountRate  *float64              `json:"discountRate" binding:"omitempty,min=0,max=100"`
	MinimumBadges *int                  `json:"minimumBadges" binding:"omitempty,min=1"`
	Contact       *string               `json:"contact"`
	Description   *string               `json:"description"`
	IsActive      *bool                 `json:"isActive"`
}

// ApplyTo returns existing with the supplied fields replaced.
func (r *UpdatePartnerRequest) ApplyTo(existing *partner.Partner) (*partner.Partner, error) {
	updated := *existing
	updated.Name = ptr.Or(r.Name, existing.Name)
	updated.Category = ptr.Or(r.Category, existing.Category)
	updated.DiscountRate = ptr.Or(r.DiscountRate, existing.DiscountRate)
	updated.MinimumBadges = ptr.Or(r.MinimumBadges, existing.MinimumBadges)
	updated.Contact = ptr.Or(r.Contact, existing.Contact)
	updated.Description = ptr.Or(r.Description, existing.Description)
	updated.IsActive = ptr.Or(r.IsActive, existing.IsActive)
	if r.Location != nil {
		updated.Location = r.Location.toDomain()
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}
