package qrcode

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/qrcode/ports.go -package=qrcodemock

import (
	"context"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
)

// BadgeCatalog returns (nil, nil) when no badge matches.
type BadgeCatalog interface {
	FindByQRToken(ctx context.Context, token string) (*badge.Badge, error)
	FindByID(ctx context.Context, id string) (*badge.Badge, error)
}

type NonceLedger interface {
	IsConsumed(ctx context.Context, nonce string) (bool, error)
	// Consume records nonce for ttl. It returns false when another caller consumed it first.
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

// ResultCache must never serve an entry older than its TTL.
type ResultCache interface {
	Get(key string) (Result, bool)
	Set(key string, r Result)
	Clear()
}

type SecretProvider interface {
	Secret() []byte
}

type StaticSecret []byte

func (s StaticSecret) Secret() []byte {
	return s
}
