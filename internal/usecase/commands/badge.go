package commands

//go:generate mockgen -source=badge.go -destination=../../../tests/mock/commands/badge.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	reqdto "github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/dto/request"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/errs"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
)

// ScanResult wraps the validation outcome. AcquiredAt is set only when the badge was granted.
type ScanResult struct {
	Result     qrcode.Result
	AcquiredAt *time.Time
}

type BadgeCommands interface {
	ValidateQR(ctx context.Context, req reqdto.ValidateQRRequest) (qrcode.Result, error)
	ScanBadge(ctx context.Context, userID uuid.UUID, req reqdto.ValidateQRRequest) (*ScanResult, error)
	GenerateQR(ctx context.Context, badgeID string) (qrcode.DynamicPayload, error)
}

type badgeCommandsImpl struct {
	uow       shared.UnitOfWork
	validator qrcode.Validator
	clock     clock.Clock
}

func NewBadgeCommands(uow shared.UnitOfWork, validator qrcode.Validator, clk clock.Clock) BadgeCommands {
	return &badgeCommandsImpl{
		uow:       uow,
		validator: validator,
		clock:     clk,
	}
}

// ValidateQR is a dry run: a dynamic code stays usable for a following ScanBadge.
func (b *badgeCommandsImpl) ValidateQR(ctx context.Context, req reqdto.ValidateQRRequest) (qrcode.Result, error) {
	return b.validator.CheckQRCode(ctx, req.QRCode, req.Point())
}

// ScanBadge grants the badge only after a valid scan. A dynamic code's nonce is spent
// even when the user already owns the badge.
func (b *badgeCommandsImpl) ScanBadge(ctx context.Context, userID uuid.UUID, req reqdto.ValidateQRRequest) (*ScanResult, error) {
	res, err := b.validator.ValidateQRCode(ctx, req.QRCode, req.Point())
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return &ScanResult{Result: res}, nil
	}

	now := b.clock.Now()
	grant := shared.BadgeGrant{
		UserID:         userID,
		BadgeID:        res.Badge.ID,
		ValidationType: string(res.ValidationType),
		QRTimestamp:    res.QRTimestamp,
		AcquiredAt:     now,
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if grantErr := tx.UserBadges().Grant(ctx, tx.DB(), grant); grantErr != nil {
			return grantErr
		}
		return tx.Users().RecordVisit(ctx, tx.DB(), userID, now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrBadgeAlreadyOwned)
		}
		return nil, err
	}

	slog.Info("badge issued",
		"user_id", userID,
		"badge_id", grant.BadgeID,
		"validation_type", grant.ValidationType,
	)
	return &ScanResult{Result: res, AcquiredAt: &now}, nil
}

func (b *badgeCommandsImpl) GenerateQR(ctx context.Context, badgeID string) (qrcode.DynamicPayload, error) {
	return b.validator.GenerateDynamicQRCode(ctx, badgeID)
}
