package queries

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/queries/partner.go -package=queriesmock

import (
	"context"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/ptr"
)

type PartnerQueries interface {
	ListPartners(ctx context.Context) ([]PartnerView, error)
	GetPartner(ctx context.Context, id string) (*PartnerView, error)
}

type PartnerCatalogReader interface {
	ListActivePartners(ctx context.Context) ([]*partner.Partner, error)
	FindPartnerByID(ctx context.Context, id string) (*partner.Partner, error)
}

type partnerQueriesImpl struct {
	catalog PartnerCatalogReader
}

func NewPartnerQueries(catalog PartnerCatalogReader) PartnerQueries {
	return &partnerQueriesImpl{catalog: catalog}
}

func (q *partnerQueriesImpl) ListPartners(ctx context.Context) ([]PartnerView, error) {
	partners, err := q.catalog.ListActivePartners(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PartnerView, 0, len(partners))
	for _, p := range partners {
		views = append(views, toPartnerView(p))
	}
	return views, nil
}

// GetPartner hides deactivated partners.
func (q *partnerQueriesImpl) GetPartner(ctx context.Context, id string) (*PartnerView, error) {
	p, err := q.catalog.FindPartnerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, errs.ErrPartnerNotFound
	}

	v := toPartnerView(p)
	return &v, nil
}

func toPartnerView(p *partner.Partner) PartnerView {
	v := PartnerView{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Location: LocationView{
			Name:    p.Location.Name,
			Address: p.Location.Address,
		},
		DiscountRate:  p.DiscountRate,
		MinimumBadges: p.MinimumBadges,
		Contact:       p.Contact,
		Description:   p.Description,
	}
	if c := p.Location.Coordinates; c != nil {
		v.Location.Latitude = ptr.Of(c.Latitude)
		v.Location.Longitude = ptr.Of(c.Longitude)
	}
	return v
}
