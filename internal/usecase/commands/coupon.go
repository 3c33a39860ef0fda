package commands

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
)

const maxCodeAttempts = 3

type IssueCouponResult struct {
	CouponID     uuid.UUID
	Code         string
	PartnerID    string
	DiscountRate float64
	BadgeCount   int
	ValidUntil   time.Time
	Description  string
}

type RedeemCouponResult struct {
	CouponID uuid.UUID
	Code     string
	UsedAt   time.Time
}

type CouponCommands interface {
	IssueCoupon(ctx context.Context, userID uuid.UUID, req reqdto.IssueCouponRequest) (*IssueCouponResult, error)
	RedeemCoupon(ctx context.Context, userID uuid.UUID, code string) (*RedeemCouponResult, error)
}

type couponCommandsImpl struct {
	uow      shared.UnitOfWork
	partners PartnerFinder
	clock    clock.Clock
	validity time.Duration
}

func NewCouponCommands(uow shared.UnitOfWork, partners PartnerFinder, clk clock.Clock, validity time.Duration) CouponCommands {
	return &couponCommandsImpl{
		uow:      uow,
		partners: partners,
		clock:    clk,
		validity: validity,
	}
}

func (uc *couponCommandsImpl) IssueCoupon(ctx context.Context, userID uuid.UUID, req reqdto.IssueCouponRequest) (*IssueCouponResult, error) {
	p, err := uc.partners.FindPartnerByID(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, errs.ErrPartnerNotFound
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		var result *IssueCouponResult
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			count, countErr := tx.UserBadges().CountByUser(ctx, tx.DB(), userID)
			if countErr != nil {
				return countErr
			}
			if !p.Eligible(count) {
				return errs.ErrInsufficientBadges
			}

			code, codeErr := coupon.GenerateCode(nil)
			if codeErr != nil {
				return codeErr
			}

			rate, rateErr := coupon.EffectiveDiscount(count, p.DiscountRate)
			if rateErr != nil {
				return errs.Mark(rateErr, errs.ErrDomainValidation)
			}
			description := fmt.Sprintf("%s %g%% off", p.Name, rate)

			c, newErr := coupon.NewCoupon(userID, p.ID, code, count, p.DiscountRate, p.MinimumBadges, description, uc.clock.Now(), uc.validity)
			if newErr != nil {
				return errs.Mark(newErr, errs.ErrDomainValidation)
			}
			if createErr := tx.Coupons().Create(ctx, tx.DB(), c); createErr != nil {
				return createErr
			}

			result = &IssueCouponResult{
				CouponID:     c.ID(),
				Code:         c.Code().String(),
				PartnerID:    p.ID,
				DiscountRate: c.DiscountRate(),
				BadgeCount:   count,
				ValidUntil:   c.ValidUntil(),
				Description:  c.Description(),
			}
			return nil
		})
		if err == nil {
			slog.Info("coupon issued", "user_id", userID, "partner_id", p.ID, "discount_rate", result.DiscountRate)
			return result, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		slog.Warn("coupon code collision, regenerating", "attempt", attempt)
	}

	return nil, errs.Mark(err, errs.ErrCouponCodeCollision)
}

// RedeemCoupon reports ErrCouponNotFound for coupons owned by someone else.
func (uc *couponCommandsImpl) RedeemCoupon(ctx context.Context, userID uuid.UUID, code string) (*RedeemCouponResult, error) {
	parsed, err := coupon.NewCouponCode(code)
	if err != nil {
		return nil, errs.ErrCouponNotFound
	}

	var result *RedeemCouponResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, findErr := tx.Coupons().FindByCodeForUpdate(ctx, tx.DB(), parsed)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return findErr
		}
		if c.UserID() != userID {
			return errs.ErrCouponNotFound
		}

		now := uc.clock.Now()
		if redeemErr := c.Redeem(now); redeemErr != nil {
			return redeemErr
		}
		if markErr := tx.Coupons().MarkUsed(ctx, tx.DB(), c.ID(), now); markErr != nil {
			return markErr
		}

		result = &RedeemCouponResult{CouponID: c.ID(), Code: c.Code().String(), UsedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
