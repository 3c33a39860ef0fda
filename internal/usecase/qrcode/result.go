package qrcode

import (
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
)

// Reason is the machine-readable cause of a rejected QR code.
type Reason string

const (
	ReasonMalformed     Reason = "malformed"
	ReasonMissingFields Reason = "missing_fields"
	ReasonExpired       Reason = "expired"
	ReasonUnknownCode   Reason = "unknown_code"
	ReasonUnknownBadge  Reason = "unknown_badge"
	ReasonBadSignature  Reason = "bad_signature"
	ReasonReplay        Reason = "replay"
	ReasonTooFar        Reason = "too_far"
	ReasonCancelled     Reason = "cancelled"
)

func (r Reason) String() string {
	return string(r)
}

type ValidationType string

const (
	TypeSimple  ValidationType = "simple"
	TypeDynamic ValidationType = "dynamic"
)

// Result is the outcome of a validation. Rejections are results, not errors.
type Result struct {
	Valid          bool
	Reason         Reason
	ValidationType ValidationType
	Badge          *badge.Badge
	QRTimestamp    *time.Time
	// Distance is set in meters for too_far rejections only.
	Distance *int
}

func Valid(b *badge.Badge, vt ValidationType) Result {
	return Result{Valid: true, ValidationType: vt, Badge: b}
}

func Invalid(reason Reason, vt ValidationType) Result {
	return Result{Reason: reason, ValidationType: vt}
}

func (r Result) withTimestamp(ts time.Time) Result {
	r.QRTimestamp = &ts
	return r
}

func (r Result) withDistance(meters int) Result {
	r.Distance = &meters
	return r
}
