//go:build unit

package commands_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
	sharedmock "github.com/Yanolja-Travel-Innovation-2025/backend/tests/mock/shared"
)

// txMocks wires a UnitOfWork whose Within runs the callback against mocked repositories.
type txMocks struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	users      *sharedmock.MockUserRepository
	userBadges *sharedmock.MockUserBadgeRepository
	coupons    *sharedmock.MockCouponRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		users:      sharedmock.NewMockUserRepository(ctrl),
		userBadges: sharedmock.NewMockUserBadgeRepository(ctrl),
		coupons:    sharedmock.NewMockCouponRepository(ctrl),
	}
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().UserBadges().Return(m.userBadges).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}
