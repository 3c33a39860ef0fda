package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
)

const (
	createCouponSQL = `INSERT INTO coupons (id, user_id, partner_id, code, discount_rate, required_badges, valid_until, is_used, used_at, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	findCouponForUpdateSQL = `SELECT id, user_id, partner_id, code, discount_rate, required_badges, valid_until, is_used, used_at, description, created_at
FROM coupons
WHERE code = $1
FOR UPDATE`

	markCouponUsedSQL = `UPDATE coupons SET is_used = TRUE, used_at = $2 WHERE id = $1 AND is_used = FALSE`
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	_, err := tx.Exec(ctx, createCouponSQL,
		c.ID(),
		c.UserID(),
		c.PartnerID(),
		c.Code().String(),
		c.DiscountRate(),
		c.RequiredBadges(),
		c.ValidUntil(),
		c.IsUsed(),
		c.UsedAt(),
		c.Description(),
		c.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err, infra.PgErrorKind(err))
	}
	return nil
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code coupon.Code) (*coupon.Coupon, error) {
	var rec coupon.Record
	err := tx.QueryRow(ctx, findCouponForUpdateSQL, code.String()).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.PartnerID,
		&rec.Code,
		&rec.DiscountRate,
		&rec.RequiredBadges,
		&rec.ValidUntil,
		&rec.IsUsed,
		&rec.UsedAt,
		&rec.Description,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return coupon.FromRecord(rec), nil
}

func (r *CouponRepository) MarkUsed(ctx context.Context, tx db.DBTX, id uuid.UUID, usedAt time.Time) error {
	tag, err := tx.Exec(ctx, markCouponUsedSQL, id, usedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found or already used", nil, infra.KindNotFound)
	}
	return nil
}
