//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	commandsmock "github.com/Yanolja-Travel-Innovation-2025/backend/tests/mock/commands"
)

var couponNow = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

const couponValidity = 30 * 24 * time.Hour

func newCouponCommands(t *testing.T) (commands.CouponCommands, *txMocks, *commandsmock.MockPartnerFinder) {
	t.Helper()
	m := newTxMocks(t)
	finder := commandsmock.NewMockPartnerFinder(gomock.NewController(t))
	return commands.NewCouponCommands(m.uow, finder, clock.NewMockClock(couponNow), couponValidity), m, finder
}

func blackPorkHouse() *partner.Partner {
	return &partner.Partner{
		ID:            "64b7f0c2e1a2b3c4d5e6f7a1",
		Name:          "Black Pork House",
		Category:      "restaurant",
		DiscountRate:  10,
		MinimumBadges: 2,
		Contact:       "064-123-4567",
		IsActive:      true,
	}
}

func TestIssueCoupon(t *testing.T) {
	userID := uuid.New()
	p := blackPorkHouse()
	req := reqdto.IssueCouponRequest{PartnerID: p.ID}

	t.Run("tiered discount", func(t *testing.T) {
		uc, m, finder := newCouponCommands(t)
		finder.EXPECT().FindPartnerByID(gomock.Any(), p.ID).Return(p, nil)
		m.userBadges.EXPECT().CountByUser(gomock.Any(), gomock.Any(), userID).Return(3, nil)

		var stored *coupon.Coupon
		m.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, c *coupon.Coupon) error {
				stored = c
				return nil
			})

		res, err := uc.IssueCoupon(context.Background(), userID, req)
		require.NoError(t, err)
		assert.InDelta(t, 15.0, res.DiscountRate, 1e-9)
		assert.Equal(t, 3, res.BadgeCount)
		assert.Equal(t, couponNow.Add(couponValidity), res.ValidUntil)
		assert.Equal(t, "Black Pork House 15% off", res.Description)
		assert.Regexp(t, `^JEJU[A-Z0-9]{8}$`, res.Code)

		require.NotNil(t, stored)
		assert.Equal(t, userID, stored.UserID())
		assert.Equal(t, res.Code, stored.Code().String())
		assert.Equal(t, p.MinimumBadges, stored.RequiredBadges())
	})

	t.Run("not enough badges", func(t *testing.T) {
		uc, m, finder := newCouponCommands(t)
		finder.EXPECT().FindPartnerByID(gomock.Any(), p.ID).Return(p, nil)
		m.userBadges.EXPECT().CountByUser(gomock.Any(), gomock.Any(), userID).Return(1, nil)

		_, err := uc.IssueCoupon(context.Background(), userID, req)
		assert.ErrorIs(t, err, errs.ErrInsufficientBadges)
	})

	t.Run("unknown or inactive partner", func(t *testing.T) {
		inactive := blackPorkHouse()
		inactive.IsActive = false

		for name, found := range map[string]*partner.Partner{"missing": nil, "inactive": inactive} {
			t.Run(name, func(t *testing.T) {
				uc, _, finder := newCouponCommands(t)
				finder.EXPECT().FindPartnerByID(gomock.Any(), p.ID).Return(found, nil)

				_, err := uc.IssueCoupon(context.Background(), userID, req)
				assert.ErrorIs(t, err, errs.ErrPartnerNotFound)
			})
		}
	})

	t.Run("code collision is retried", func(t *testing.T) {
		uc, m, finder := newCouponCommands(t)
		finder.EXPECT().FindPartnerByID(gomock.Any(), p.ID).Return(p, nil)
		m.userBadges.EXPECT().CountByUser(gomock.Any(), gomock.Any(), userID).Return(2, nil).Times(2)
		gomock.InOrder(
			m.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("create coupon", assert.AnError, infra.KindDuplicateKey)),
			m.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := uc.IssueCoupon(context.Background(), userID, req)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, res.DiscountRate, 1e-9)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		uc, m, finder := newCouponCommands(t)
		finder.EXPECT().FindPartnerByID(gomock.Any(), p.ID).Return(p, nil)
		m.userBadges.EXPECT().CountByUser(gomock.Any(), gomock.Any(), userID).Return(2, nil).Times(3)
		m.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create coupon", assert.AnError, infra.KindDuplicateKey)).Times(3)

		_, err := uc.IssueCoupon(context.Background(), userID, req)
		assert.True(t, errs.Is(err, errs.ErrCouponCodeCollision))
	})
}

func TestRedeemCoupon(t *testing.T) {
	userID := uuid.New()
	code := "JEJUAB12CD34"

	stored := func(owner uuid.UUID, validUntil time.Time, used bool) *coupon.Coupon {
		return coupon.FromRecord(coupon.Record{
			ID:             uuid.New(),
			UserID:         owner,
			PartnerID:      "64b7f0c2e1a2b3c4d5e6f7a1",
			Code:           code,
			DiscountRate:   10,
			RequiredBadges: 2,
			ValidUntil:     validUntil,
			IsUsed:         used,
			CreatedAt:      couponNow.Add(-24 * time.Hour),
		})
	}

	t.Run("marks the coupon used", func(t *testing.T) {
		uc, m, _ := newCouponCommands(t)
		c := stored(userID, couponNow.Add(time.Hour), false)
		m.coupons.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), coupon.Code(code)).Return(c, nil)
		m.coupons.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), c.ID(), couponNow).Return(nil)

		res, err := uc.RedeemCoupon(context.Background(), userID, "jejuab12cd34")
		require.NoError(t, err)
		assert.Equal(t, c.ID(), res.CouponID)
		assert.Equal(t, couponNow, res.UsedAt)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name    string
			coupon  *coupon.Coupon
			findErr error
			wantErr error
		}{
			{name: "already used", coupon: stored(userID, couponNow.Add(time.Hour), true), wantErr: coupon.ErrCouponAlreadyUsed},
			{name: "expired", coupon: stored(userID, couponNow.Add(-time.Second), false), wantErr: coupon.ErrCouponExpired},
			{name: "someone else's coupon", coupon: stored(uuid.New(), couponNow.Add(time.Hour), false), wantErr: errs.ErrCouponNotFound},
			{name: "no such code", findErr: infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound), wantErr: errs.ErrCouponNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, m, _ := newCouponCommands(t)
				m.coupons.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), coupon.Code(code)).Return(tt.coupon, tt.findErr)

				_, err := uc.RedeemCoupon(context.Background(), userID, code)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("malformed code never reaches the database", func(t *testing.T) {
		uc, _, _ := newCouponCommands(t)

		_, err := uc.RedeemCoupon(context.Background(), userID, "NOT-A-CODE")
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})
}
