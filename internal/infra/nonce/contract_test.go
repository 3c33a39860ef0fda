//go:build unit || e2e

package nonce_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
)

type ledger interface {
	IsConsumed(ctx context.Context, nonce string) (bool, error)
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type ledgerFactory func(t *testing.T, clk clock.Clock) ledger

var contractStart = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func runLedgerContract(t *testing.T, newLedger ledgerFactory) {
	ctx := context.Background()

	t.Run("unseen nonce is not consumed", func(t *testing.T) {
		l := newLedger(t, clock.NewMockClock(contractStart))

		consumed, err := l.IsConsumed(ctx, "a1")
		require.NoError(t, err)
		assert.False(t, consumed)
	})

	t.Run("consume once", func(t *testing.T) {
		l := newLedger(t, clock.NewMockClock(contractStart))

		ok, err := l.Consume(ctx, "a2", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		consumed, err := l.IsConsumed(ctx, "a2")
		require.NoError(t, err)
		assert.True(t, consumed)

		ok, err = l.Consume(ctx, "a2", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok, "second consume must lose")
	})

	t.Run("expired record reads as absent and can be reclaimed", func(t *testing.T) {
		clk := clock.NewMockClock(contractStart)
		l := newLedger(t, clk)

		ok, err := l.Consume(ctx, "a3", time.Hour)
		require.NoError(t, err)
		require.True(t, ok)

		clk.Add(time.Hour - time.Second)
		consumed, err := l.IsConsumed(ctx, "a3")
		require.NoError(t, err)
		assert.True(t, consumed)

		clk.Add(time.Second)
		consumed, err = l.IsConsumed(ctx, "a3")
		require.NoError(t, err)
		assert.False(t, consumed)

		ok, err = l.Consume(ctx, "a3", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete expired leaves live records", func(t *testing.T) {
		clk := clock.NewMockClock(contractStart)
		l := newLedger(t, clk)

		_, err := l.Consume(ctx, "short", time.Minute)
		require.NoError(t, err)
		_, err = l.Consume(ctx, "long", time.Hour)
		require.NoError(t, err)

		clk.Add(2 * time.Minute)
		n, err := l.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		consumed, err := l.IsConsumed(ctx, "long")
		require.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("concurrent consume has exactly one winner", func(t *testing.T) {
		l := newLedger(t, clock.NewMockClock(contractStart))

		const workers = 16
		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				ok, err := l.Consume(ctx, "race", time.Hour)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})
}
