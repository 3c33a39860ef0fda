package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
)

// PartnerFinder returns (nil, nil) when no partner matches.
type PartnerFinder interface {
	FindPartnerByID(ctx context.Context, id string) (*partner.Partner, error)
}

type PartnerStore interface {
	PartnerFinder
	InsertPartner(ctx context.Context, p *partner.Partner) (string, error)
	UpdatePartner(ctx context.Context, p *partner.Partner) error
}
