package nonce

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS consumed_nonces (
		nonce TEXT PRIMARY KEY,
		expires_at INTEGER NOT NULL,
		consumed_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_consumed_nonces_expires_at ON consumed_nonces(expires_at);`,
}

const (
	sqliteIsConsumed = `SELECT EXISTS (
	SELECT 1 FROM consumed_nonces WHERE nonce = ? AND expires_at > ?
)`

	sqliteConsume = `INSERT INTO consumed_nonces (nonce, expires_at, consumed_at)
VALUES (?, ?, ?)
ON CONFLICT (nonce) DO UPDATE
	SET expires_at = excluded.expires_at, consumed_at = excluded.consumed_at
	WHERE consumed_nonces.expires_at <= excluded.consumed_at`

	sqliteDeleteExpired = `DELETE FROM consumed_nonces WHERE expires_at <= ?`
)

// SQLiteLedger persists consumed nonces for a single node across restarts.
// Times are stored as unix nanoseconds.
type SQLiteLedger struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLiteLedger creates the database file and its schema when missing.
func OpenSQLiteLedger(ctx context.Context, path string, clk clock.Clock) (*SQLiteLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create nonce db directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection serialises writers so the conditional upsert is the only arbiter.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	for _, stmt := range sqliteSchema {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("init nonce schema: %w", err)
		}
	}

	return &SQLiteLedger{db: sqlDB, clock: clk}, nil
}

func (l *SQLiteLedger) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *SQLiteLedger) IsConsumed(ctx context.Context, nonce string) (bool, error) {
	var exists bool
	err := l.db.QueryRowContext(ctx, sqliteIsConsumed, nonce, l.clock.Now().UnixNano()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check consumed nonce", err)
	}
	return exists, nil
}

func (l *SQLiteLedger) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	now := l.clock.Now()
	res, err := l.db.ExecContext(ctx, sqliteConsume, nonce, now.Add(ttl).UnixNano(), now.UnixNano())
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume nonce", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra.WrapRepoErr("failed to read consumed nonce result", err)
	}
	return n == 1, nil
}

func (l *SQLiteLedger) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := l.db.ExecContext(ctx, sqliteDeleteExpired, l.clock.Now().UnixNano())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired nonces", err)
	}
	return res.RowsAffected()
}
