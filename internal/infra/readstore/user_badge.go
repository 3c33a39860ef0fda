package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

const listUserBadgesSQL = `SELECT badge_id, validation_type, qr_timestamp, acquired_at
FROM user_badges
WHERE user_id = $1
ORDER BY acquired_at, badge_id`

type UserBadgeReadStore struct {
	db db.DBTX
}

func NewUserBadgeReadStore(dbtx db.DBTX) *UserBadgeReadStore {
	return &UserBadgeReadStore{db: dbtx}
}

func (r *UserBadgeReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.UserBadgeRow, error) {
	rows, err := r.db.Query(ctx, listUserBadgesSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user badges", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.UserBadgeRow, error) {
		var r queries.UserBadgeRow
		err := row.Scan(&r.BadgeID, &r.ValidationType, &r.QRTimestamp, &r.AcquiredAt)
		return r, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan user badges", err)
	}
	return out, nil
}
