//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

var (
	postgresOnce sync.Once
	postgresAddr Address
	postgresErr  error
)

type Address struct {
	Host string
	Port nat.Port
}

func (a Address) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, a.Host, a.Port.Port(), database)
}

// StartPostgres starts one throwaway Postgres per test binary. Durability settings are
// off because the data lives on tmpfs and dies with the container.
func StartPostgres(t *testing.T) Address {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return Address{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		if err != nil {
			postgresErr = err
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			postgresErr = err
			return
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			postgresErr = err
			return
		}
		postgresAddr = Address{Host: host, Port: port}
	})

	require.NoError(t, postgresErr, "start postgres container")
	return postgresAddr
}

// CreateDatabase creates a uniquely named database that is dropped when t ends.
func CreateDatabase(t *testing.T, addr Address) config.DBConfig {
	t.Helper()

	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, addr.dsn("postgres"))
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	// CREATE DATABASE copies template1 and fails while another session holds it.
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(ctx, addr.dsn("postgres"))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     addr.Host,
		Port:     addr.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Seoul",
	}
}

// NewMigratedPool connects to a fresh database with the schema applied.
func NewMigratedPool(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	cfg := CreateDatabase(t, StartPostgres(t))
	pool, _, err := db.Connect(cfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(pool.Close)

	require.NoError(t, ApplyMigrations(context.Background(), pool), "apply migrations")
	return pool, cfg
}

// ApplyMigrations runs every migrations/*.sql file in name order.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return errs.Wrapf(err, "read %s", f)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return errs.Wrapf(err, "apply %s", filepath.Base(f))
		}
	}
	return nil
}

// migrationsDir walks up from the package under test to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "getwd")
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errs.New("module root not found")
		}
		dir = parent
	}
}
