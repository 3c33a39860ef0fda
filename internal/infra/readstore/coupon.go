package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

const listCouponsByUserSQL = `SELECT id, partner_id, code, discount_rate, required_badges, valid_until, is_used, used_at, description, created_at
FROM coupons
WHERE user_id = $1
ORDER BY created_at DESC, id`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (r *CouponReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.CouponView, error) {
	rows, err := r.db.Query(ctx, listCouponsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.CouponView, error) {
		var v queries.CouponView
		err := row.Scan(&v.ID, &v.PartnerID, &v.Code, &v.DiscountRate, &v.RequiredBadges,
			&v.ValidUntil, &v.IsUsed, &v.UsedAt, &v.Description, &v.CreatedAt)
		return v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan coupons", err)
	}
	return out, nil
}
