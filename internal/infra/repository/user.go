package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
)

const (
	createUserSQL = `INSERT INTO users (id, email, nickname, password_hash, role, visit_count, last_visit, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

	recordVisitSQL = `UPDATE users
SET visit_count = visit_count + 1, last_visit = $2
WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		u.ID(),
		u.Email().Value(),
		u.Nickname().String(),
		u.PasswordHash(),
		u.Role().String(),
		u.VisitCount(),
		u.LastVisit(),
		u.IsActive(),
		u.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, infra.PgErrorKind(err))
	}
	return id, nil
}

func (r *UserRepository) RecordVisit(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx, recordVisitSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record visit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
