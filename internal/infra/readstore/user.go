package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

const (
	userColumns = `id, email, nickname, role, visit_count, last_visit, is_active, created_at`

	findUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	findUserByEmailSQL = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(userDest(&v)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(append(userDest(&v), &hash)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func userDest(v *queries.AuthorizedUserView) []any {
	return []any{&v.ID, &v.Email, &v.Nickname, &v.Role, &v.VisitCount, &v.LastVisit, &v.IsActive, &v.CreatedAt}
}
