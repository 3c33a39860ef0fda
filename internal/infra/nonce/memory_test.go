//go:build unit

package nonce_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/nonce"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
)

func TestMemoryLedger(t *testing.T) {
	runLedgerContract(t, func(_ *testing.T, clk clock.Clock) ledger {
		return nonce.NewMemoryLedger(clk)
	})
}

func TestSQLiteLedger(t *testing.T) {
	runLedgerContract(t, func(t *testing.T, clk clock.Clock) ledger {
		l, err := nonce.OpenSQLiteLedger(context.Background(), filepath.Join(t.TempDir(), "nonces.db"), clk)
		require.NoError(t, err)
		t.Cleanup(func() { _ = l.Close() })
		return l
	})
}

func TestSQLiteLedger_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "nonces.db")
	clk := clock.NewMockClock(contractStart)

	l, err := nonce.OpenSQLiteLedger(ctx, path, clk)
	require.NoError(t, err)
	ok, err := l.Consume(ctx, "persisted", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l.Close())

	reopened, err := nonce.OpenSQLiteLedger(ctx, path, clk)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	consumed, err := reopened.IsConsumed(ctx, "persisted")
	require.NoError(t, err)
	assert.True(t, consumed)
}

func TestJanitor_PurgeOnce(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(contractStart)
	l := nonce.NewMemoryLedger(clk)

	_, err := l.Consume(ctx, "old", time.Minute)
	require.NoError(t, err)
	_, err = l.Consume(ctx, "fresh", time.Hour)
	require.NoError(t, err)
	clk.Add(time.Minute)

	j := nonce.NewJanitor(l, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	j.PurgeOnce(ctx)

	assert.Equal(t, 1, l.Len())
}

func TestJanitor_RunStopsOnCancel(t *testing.T) {
	l := nonce.NewMemoryLedger(clock.NewMockClock(contractStart))
	j := nonce.NewJanitor(l, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
