//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
)

// TestPassword is the plain text behind the hash CreateTestUser stores.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	nickname := strings.SplitN(email, "@", 2)[0]

	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, nickname, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, nickname, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func GrantTestBadge(t *testing.T, db DBLike, userID uuid.UUID, badgeID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO user_badges (user_id, badge_id, validation_type, acquired_at) VALUES ($1, $2, 'simple', now()) ON CONFLICT DO NOTHING",
		userID, badgeID)
	require.NoError(t, err)
}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB truncates every public table. The statement is built once per test binary.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `SELECT 'public.' || quote_ident(tablename) FROM pg_tables WHERE schemaname = 'public'`)
		if err != nil {
			truncateErr = err
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateErr = err
			return
		}
		if len(tables) > 0 {
			truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
		}
	})
	if truncateErr != nil {
		return errs.Wrap(truncateErr, "list tables")
	}
	if truncateSQL == "" {
		return nil
	}
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
