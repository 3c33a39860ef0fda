package commands

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/commands/partner.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
)

type PartnerCommands interface {
	CreatePartner(ctx context.Context, req reqdto.CreatePartnerRequest) (string, error)
	UpdatePartner(ctx context.Context, id string, req reqdto.UpdatePartnerRequest) error
	DeactivatePartner(ctx context.Context, id string) error
}

type partnerCommandsImpl struct {
	store PartnerStore
}

func NewPartnerCommands(store PartnerStore) PartnerCommands {
	return &partnerCommandsImpl{store: store}
}

func (uc *partnerCommandsImpl) CreatePartner(ctx context.Context, req reqdto.CreatePartnerRequest) (string, error) {
	p, err := req.ToDomain()
	if err != nil {
		return "", errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := uc.store.InsertPartner(ctx, p)
	if err != nil {
		return "", err
	}
	slog.Info("partner created", "partner_id", id, "name", p.Name)
	return id, nil
}

func (uc *partnerCommandsImpl) UpdatePartner(ctx context.Context, id string, req reqdto.UpdatePartnerRequest) error {
	existing, err := uc.load(ctx, id)
	if err != nil {
		return err
	}

	updated, err := req.ApplyTo(existing)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return uc.save(ctx, updated)
}

// DeactivatePartner hides the partner from listings and blocks new coupons. Issued coupons stay valid.
func (uc *partnerCommandsImpl) DeactivatePartner(ctx context.Context, id string) error {
	existing, err := uc.load(ctx, id)
	if err != nil {
		return err
	}

	existing.IsActive = false
	if err := uc.save(ctx, existing); err != nil {
		return err
	}
	slog.Info("partner deactivated", "partner_id", id)
	return nil
}

func (uc *partnerCommandsImpl) load(ctx context.Context, id string) (*partner.Partner, error) {
	p, err := uc.store.FindPartnerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errs.ErrPartnerNotFound
	}
	return p, nil
}

func (uc *partnerCommandsImpl) save(ctx context.Context, p *partner.Partner) error {
	if err := uc.store.UpdatePartner(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPartnerNotFound
		}
		return err
	}
	return nil
}
