package queries

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type CouponQueries interface {
	ListMyCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
}

type CouponReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) ListMyCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error) {
	coupons, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if coupons == nil {
		coupons = []CouponView{}
	}
	return coupons, nil
}
