package nonce

import (
	"context"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
)

const (
	pgIsConsumed = `SELECT EXISTS (
	SELECT 1 FROM consumed_nonces WHERE nonce = $1 AND expires_at > $2
)`

	// An expired row is reclaimed in place; a live row leaves the statement with zero rows affected.
	pgConsume = `INSERT INTO consumed_nonces (nonce, expires_at, consumed_at)
VALUES ($1, $2, $3)
ON CONFLICT (nonce) DO UPDATE
	SET expires_at = EXCLUDED.expires_at, consumed_at = EXCLUDED.consumed_at
	WHERE consumed_nonces.expires_at <= EXCLUDED.consumed_at`

	pgDeleteExpired = `DELETE FROM consumed_nonces WHERE expires_at <= $1`
)

// PostgresLedger shares consumed nonces across every instance using the same database.
type PostgresLedger struct {
	db    db.DBTX
	clock clock.Clock
}

func NewPostgresLedger(dbtx db.DBTX, clk clock.Clock) *PostgresLedger {
	return &PostgresLedger{db: dbtx, clock: clk}
}

func (l *PostgresLedger) IsConsumed(ctx context.Context, nonce string) (bool, error) {
	var exists bool
	err := l.db.QueryRow(ctx, pgIsConsumed, nonce, l.clock.Now()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check consumed nonce", err)
	}
	return exists, nil
}

func (l *PostgresLedger) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	now := l.clock.Now()
	tag, err := l.db.Exec(ctx, pgConsume, nonce, now.Add(ttl), now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume nonce", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (l *PostgresLedger) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := l.db.Exec(ctx, pgDeleteExpired, l.clock.Now())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired nonces", err)
	}
	return tag.RowsAffected(), nil
}
