package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
)

const (
	grantBadgeSQL = `INSERT INTO user_badges (user_id, badge_id, validation_type, qr_timestamp, acquired_at)
VALUES ($1, $2, $3, $4, $5)`

	countUserBadgesSQL = `SELECT count(*) FROM user_badges WHERE user_id = $1`
)

type UserBadgeRepository struct{}

func NewUserBadgeRepository() *UserBadgeRepository {
	return &UserBadgeRepository{}
}

func (r *UserBadgeRepository) Grant(ctx context.Context, tx db.DBTX, g shared.BadgeGrant) error {
	_, err := tx.Exec(ctx, grantBadgeSQL, g.UserID, g.BadgeID, g.ValidationType, g.QRTimestamp, g.AcquiredAt)
	if err != nil {
		kind := infra.PgErrorKind(err)
		if kind == infra.KindDuplicateKey {
			return infra.WrapRepoErr("badge already granted", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to grant badge", err, kind)
	}
	return nil
}

func (r *UserBadgeRepository) CountByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int, error) {
	var n int
	if err := tx.QueryRow(ctx, countUserBadgesSQL, userID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count user badges", err)
	}
	return n, nil
}
