package nonce

import (
	"context"
	"log/slog"
	"time"
)

// Purger removes nonce records whose expiry has passed.
type Purger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Janitor periodically purges expired nonces so ledgers stay bounded.
type Janitor struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger
}

func NewJanitor(purger Purger, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{purger: purger, interval: interval, logger: logger}
}

// Run blocks until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.PurgeOnce(ctx)
		}
	}
}

func (j *Janitor) PurgeOnce(ctx context.Context) {
	n, err := j.purger.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Warn("nonce purge failed", "error", err.Error())
		}
		return
	}
	if n > 0 {
		j.logger.Debug("expired nonces purged", "count", n)
	}
}
