package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/cache"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/nonce"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
)

const (
	minSecretBytes      = 32
	sqliteOpenTimeout   = 10 * time.Second
	legacyDefaultSecret = "qr-default-secret-key"

	NonceStoreMemory   = "memory"
	NonceStorePostgres = "postgres"
	NonceStoreSQLite   = "sqlite"
)

var (
	ErrWeakQRSecret         = errs.New("QR_SIGNATURE_SECRET must be at least 32 bytes and not the public default")
	ErrUnknownNonceStore    = errs.New("unknown NONCE_STORE")
	ErrInvalidPurgeInterval = errs.New("NONCE_PURGE_INTERVAL must be positive")
)

var QRModule = fx.Module("qr",
	fx.Provide(
		NewQRSecret,
		NewNonceLedger,
		NewResultCache,
		NewQRValidator,
	),
)

func NewQRSecret(cfg config.Config) (qrcode.SecretProvider, error) {
	secret := cfg.QR.SignatureSecret
	if len(secret) < minSecretBytes || secret == legacyDefaultSecret {
		return nil, ErrWeakQRSecret
	}
	return qrcode.StaticSecret(secret), nil
}

type ledger interface {
	qrcode.NonceLedger
	nonce.Purger
}

// NewNonceLedger picks the ledger named by NONCE_STORE and runs its janitor for the app lifetime.
func NewNonceLedger(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) (qrcode.NonceLedger, error) {
	if cfg.Nonce.PurgeInterval <= 0 {
		return nil, errs.Wrapf(ErrInvalidPurgeInterval, "got %s", cfg.Nonce.PurgeInterval)
	}

	var l ledger
	switch store := strings.ToLower(strings.TrimSpace(cfg.Nonce.Store)); store {
	case NonceStoreMemory, "":
		l = nonce.NewMemoryLedger(clk)
	case NonceStorePostgres:
		l = nonce.NewPostgresLedger(pool, clk)
	case NonceStoreSQLite:
		ctx, cancel := context.WithTimeout(context.Background(), sqliteOpenTimeout)
		defer cancel()
		sqliteLedger, err := nonce.OpenSQLiteLedger(ctx, cfg.Nonce.SQLitePath, clk)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return sqliteLedger.Close()
			},
		})
		l = sqliteLedger
	default:
		return nil, errs.Wrapf(ErrUnknownNonceStore, "%q", store)
	}

	logger.Info("nonce ledger selected", "store", cfg.Nonce.Store)
	runJanitor(lc, nonce.NewJanitor(l, cfg.Nonce.PurgeInterval, logger))
	return l, nil
}

func runJanitor(lc fx.Lifecycle, j *nonce.Janitor) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				j.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func NewResultCache(cfg config.Config, clk clock.Clock) qrcode.ResultCache {
	return cache.NewMemoryResultCache(clk, cfg.QR.CacheTTL, cfg.QR.CacheMaxEntries)
}

func NewQRValidator(
	catalog qrcode.BadgeCatalog,
	ledger qrcode.NonceLedger,
	resultCache qrcode.ResultCache,
	clk clock.Clock,
	secrets qrcode.SecretProvider,
	logger *slog.Logger,
	cfg config.Config,
) qrcode.Validator {
	return qrcode.NewValidator(catalog, ledger, resultCache, clk, secrets, logger, qrcode.Options{
		MaxAge:         cfg.QR.MaxAge,
		NonceTTL:       cfg.QR.NonceTTL,
		GeofenceRadius: cfg.QR.GeofenceRadiusM,
	})
}
