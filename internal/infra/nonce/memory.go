package nonce

import (
	"context"
	"sync"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
)

// MemoryLedger is a process-local ledger. Expired records read as absent.
type MemoryLedger struct {
	mu       sync.Mutex
	consumed map[string]time.Time
	clock    clock.Clock
}

func NewMemoryLedger(clk clock.Clock) *MemoryLedger {
	return &MemoryLedger{
		consumed: make(map[string]time.Time),
		clock:    clk,
	}
}

func (l *MemoryLedger) IsConsumed(_ context.Context, nonce string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.liveLocked(nonce), nil
}

func (l *MemoryLedger) Consume(_ context.Context, nonce string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.liveLocked(nonce) {
		return false, nil
	}
	l.consumed[nonce] = l.clock.Now().Add(ttl)
	return true, nil
}

func (l *MemoryLedger) DeleteExpired(_ context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	var n int64
	for k, exp := range l.consumed {
		if !now.Before(exp) {
			delete(l.consumed, k)
			n++
		}
	}
	return n, nil
}

func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.consumed)
}

func (l *MemoryLedger) liveLocked(nonce string) bool {
	exp, ok := l.consumed[nonce]
	if !ok {
		return false
	}
	if !l.clock.Now().Before(exp) {
		delete(l.consumed, nonce)
		return false
	}
	return true
}
