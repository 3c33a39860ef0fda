package qrcode

//go:generate mockgen -source=validator.go -destination=../../../tests/mock/qrcode/validator.go -package=qrcodemock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/geo"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/signature"
)

var (
	ErrLookupFailed     = errs.New("qr code lookup failed")
	ErrGenerationFailed = errs.New("qr code generation failed")
)

type Options struct {
	MaxAge         time.Duration
	NonceTTL       time.Duration
	GeofenceRadius float64
}

func DefaultOptions() Options {
	return Options{
		MaxAge:         24 * time.Hour,
		NonceTTL:       24 * time.Hour,
		GeofenceRadius: 1000,
	}
}

type Validator interface {
	ValidateQRCode(ctx context.Context, raw json.RawMessage, loc *geo.Point) (Result, error)
	// CheckQRCode runs every stage of ValidateQRCode but never spends a dynamic code's nonce.
	CheckQRCode(ctx context.Context, raw json.RawMessage, loc *geo.Point) (Result, error)
	GenerateDynamicQRCode(ctx context.Context, badgeID string) (DynamicPayload, error)
	ClearCache()
}

type validatorImpl struct {
	catalog BadgeCatalog
	ledger  NonceLedger
	cache   ResultCache
	clock   clock.Clock
	secrets SecretProvider
	logger  *slog.Logger
	opts    Options
}

func NewValidator(
	catalog BadgeCatalog,
	ledger NonceLedger,
	cache ResultCache,
	clk clock.Clock,
	secrets SecretProvider,
	logger *slog.Logger,
	opts Options,
) Validator {
	return &validatorImpl{
		catalog: catalog,
		ledger:  ledger,
		cache:   cache,
		clock:   clk,
		secrets: secrets,
		logger:  logger,
		opts:    opts,
	}
}

// outcome carries whether a result depends only on the payload bytes and may be cached.
type outcome struct {
	result    Result
	cacheable bool
}

func (v *validatorImpl) ValidateQRCode(ctx context.Context, raw json.RawMessage, loc *geo.Point) (Result, error) {
	return v.validate(ctx, raw, loc, true)
}

func (v *validatorImpl) CheckQRCode(ctx context.Context, raw json.RawMessage, loc *geo.Point) (Result, error) {
	return v.validate(ctx, raw, loc, false)
}

func (v *validatorImpl) validate(ctx context.Context, raw json.RawMessage, loc *geo.Point, consume bool) (Result, error) {
	if ctx.Err() != nil {
		return Invalid(ReasonCancelled, ""), nil
	}

	p := parsePayload(raw)
	if p.key != "" {
		if cached, ok := v.cache.Get(p.key); ok {
			return cached, nil
		}
	}

	var (
		out outcome
		err error
	)
	switch p.kind {
	case kindSimple:
		out, err = v.validateSimple(ctx, p.token)
	case kindDynamic:
		out, err = v.validateDynamic(ctx, p, loc, consume)
	default:
		out = outcome{result: Invalid(ReasonMalformed, ""), cacheable: true}
	}
	if err != nil {
		if isCancellation(ctx, err) {
			return Invalid(ReasonCancelled, validationType(p.kind)), nil
		}
		v.logger.ErrorContext(ctx, "qr code lookup failed",
			"validation_type", validationType(p.kind),
			"error", err.Error(),
		)
		return Result{}, err
	}

	res := out.result
	if out.cacheable && p.key != "" && res.Reason != ReasonCancelled {
		v.cache.Set(p.key, res)
	}

	if !res.Valid {
		v.logger.DebugContext(ctx, "qr code rejected",
			"reason", res.Reason.String(),
			"validation_type", string(res.ValidationType),
		)
	}
	return res, nil
}

func (v *validatorImpl) validateSimple(ctx context.Context, token string) (outcome, error) {
	if token == "" {
		return outcome{result: Invalid(ReasonUnknownCode, TypeSimple), cacheable: true}, nil
	}

	b, err := v.catalog.FindByQRToken(ctx, token)
	if err != nil {
		return outcome{}, errs.Mark(errs.Wrap(err, "find badge by qr token"), ErrLookupFailed)
	}
	if !usable(b) {
		return outcome{result: Invalid(ReasonUnknownCode, TypeSimple), cacheable: true}, nil
	}

	return outcome{result: Valid(b, TypeSimple), cacheable: true}, nil
}

// validateDynamic runs the dynamic stages in order. Only the stages that precede the
// nonce check produce cacheable rejections; later outcomes depend on ledger state or
// on the caller's location.
func (v *validatorImpl) validateDynamic(ctx context.Context, p parsedPayload, loc *geo.Point, consume bool) (outcome, error) {
	reject := func(reason Reason, cacheable bool) (outcome, error) {
		return outcome{result: Invalid(reason, TypeDynamic), cacheable: cacheable}, nil
	}

	if p.missing {
		return reject(ReasonMissingFields, true)
	}
	payload := p.dynamic

	now := v.clock.Now()
	issuedAt, err := parseTimestamp(payload.Timestamp)
	if err != nil || absDuration(now.Sub(issuedAt)) > v.opts.MaxAge {
		return reject(ReasonExpired, true)
	}

	b, err := v.catalog.FindByID(ctx, payload.BadgeID)
	if err != nil {
		return outcome{}, errs.Mark(errs.Wrap(err, "find badge by id"), ErrLookupFailed)
	}
	if !usable(b) {
		return reject(ReasonUnknownBadge, true)
	}

	if !signature.Verify(payload.signed(), payload.Signature, v.secrets.Secret()) {
		return reject(ReasonBadSignature, true)
	}

	consumed, err := v.ledger.IsConsumed(ctx, payload.Nonce)
	if err != nil {
		return outcome{}, errs.Mark(errs.Wrap(err, "check nonce"), ErrLookupFailed)
	}
	if consumed {
		return reject(ReasonReplay, false)
	}

	if loc != nil && b.Geofenced() {
		if !loc.Valid() {
			return reject(ReasonMalformed, false)
		}
		d := geo.Distance(*loc, b.Location.Coordinates.Point())
		if d > v.opts.GeofenceRadius {
			res := Invalid(ReasonTooFar, TypeDynamic).withDistance(int(math.Round(d)))
			return outcome{result: res}, nil
		}
	}

	if ctx.Err() != nil {
		return reject(ReasonCancelled, false)
	}
	if !consume {
		return outcome{result: Valid(b, TypeDynamic).withTimestamp(issuedAt)}, nil
	}

	ok, err := v.ledger.Consume(ctx, payload.Nonce, v.nonceTTL(now, issuedAt))
	if err != nil {
		return outcome{}, errs.Mark(errs.Wrap(err, "consume nonce"), ErrLookupFailed)
	}
	if !ok {
		return reject(ReasonReplay, false)
	}

	return outcome{result: Valid(b, TypeDynamic).withTimestamp(issuedAt)}, nil
}

// nonceTTL keeps a consumed nonce at least until its payload can no longer pass the age check.
func (v *validatorImpl) nonceTTL(now, issuedAt time.Time) time.Duration {
	ttl := v.opts.NonceTTL
	if remaining := issuedAt.Add(v.opts.MaxAge).Sub(now); remaining > ttl {
		ttl = remaining
	}
	return ttl
}

func (v *validatorImpl) GenerateDynamicQRCode(ctx context.Context, badgeID string) (DynamicPayload, error) {
	b, err := v.catalog.FindByID(ctx, badgeID)
	if err != nil {
		return DynamicPayload{}, errs.Mark(errs.Wrap(err, "find badge by id"), ErrLookupFailed)
	}
	if !usable(b) {
		return DynamicPayload{}, errs.ErrBadgeNotFound
	}

	nonce, err := signature.NewNonce(signature.DefaultNonceBytes)
	if err != nil {
		return DynamicPayload{}, errs.Mark(err, ErrGenerationFailed)
	}

	payload := DynamicPayload{
		BadgeID:   b.ID,
		Timestamp: v.clock.Now().UTC().Format(TimestampLayout),
		Nonce:     nonce,
		Version:   PayloadVersion,
	}

	sig, err := signature.Sign(payload.signed(), v.secrets.Secret())
	if err != nil {
		return DynamicPayload{}, errs.Mark(err, ErrGenerationFailed)
	}
	payload.Signature = sig

	v.logger.InfoContext(ctx, "dynamic qr code generated", "badge_id", b.ID)
	return payload, nil
}

func (v *validatorImpl) ClearCache() {
	v.cache.Clear()
}

func usable(b *badge.Badge) bool {
	return b != nil && b.IsActive
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func validationType(k payloadKind) ValidationType {
	switch k {
	case kindSimple:
		return TypeSimple
	case kindDynamic:
		return TypeDynamic
	default:
		return ""
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
