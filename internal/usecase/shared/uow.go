package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/coupon"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	UserBadges() UserBadgeRepository
	Coupons() CouponRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	RecordVisit(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
}

// BadgeGrant records that a user earned a badge through a validated scan.
type BadgeGrant struct {
	UserID         uuid.UUID
	BadgeID        string
	ValidationType string
	QRTimestamp    *time.Time
	AcquiredAt     time.Time
}

type UserBadgeRepository interface {
	// Grant fails with a KindDuplicateKey repository error when the user already owns the badge.
	Grant(ctx context.Context, tx db.DBTX, grant BadgeGrant) error
	CountByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	// FindByCodeForUpdate locks the row for the rest of the transaction.
	FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code coupon.Code) (*coupon.Coupon, error)
	MarkUsed(ctx context.Context, tx db.DBTX, id uuid.UUID, usedAt time.Time) error
}
