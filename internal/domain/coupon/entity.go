package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponAlreadyUsed = errors.New("coupon has already been used")
)

type Coupon struct {
	id             uuid.UUID
	userID         uuid.UUID
	partnerID      string
	code           Code
	discountRate   float64
	requiredBadges int
	validUntil     time.Time
	isUsed         bool
	usedAt         *time.Time
	description    string
	createdAt      time.Time
}

// NewCoupon issues a coupon at now that stays redeemable for validity.
func NewCoupon(
	userID uuid.UUID,
	partnerID string,
	code Code,
	badgeCount int,
	baseRate float64,
	requiredBadges int,
	description string,
	now time.Time,
	validity time.Duration,
) (*Coupon, error) {
	rate, err := EffectiveDiscount(badgeCount, baseRate)
	if err != nil {
		return nil, err
	}

	if _, err := NewCouponCode(code.String()); err != nil {
		return nil, err
	}

	return &Coupon{
		id:             uuid.New(),
		userID:         userID,
		partnerID:      partnerID,
		code:           code,
		discountRate:   rate,
		requiredBadges: requiredBadges,
		validUntil:     now.Add(validity),
		description:    description,
		createdAt:      now,
	}, nil
}

// Record is the persisted form of a coupon.
type Record struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PartnerID      string
	Code           string
	DiscountRate   float64
	RequiredBadges int
	ValidUntil     time.Time
	IsUsed         bool
	UsedAt         *time.Time
	Description    string
	CreatedAt      time.Time
}

// FromRecord rebuilds a stored coupon without re-running issuance rules.
func FromRecord(r Record) *Coupon {
	return &Coupon{
		id:             r.ID,
		userID:         r.UserID,
		partnerID:      r.PartnerID,
		code:           Code(r.Code),
		discountRate:   r.DiscountRate,
		requiredBadges: r.RequiredBadges,
		validUntil:     r.ValidUntil,
		isUsed:         r.IsUsed,
		usedAt:         r.UsedAt,
		description:    r.Description,
		createdAt:      r.CreatedAt,
	}
}

func (c *Coupon) Redeem(t time.Time) error {
	if c.isUsed {
		return ErrCouponAlreadyUsed
	}
	if t.After(c.validUntil) {
		return ErrCouponExpired
	}
	c.isUsed = true
	c.usedAt = &t
	return nil
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) UserID() uuid.UUID     { return c.userID }
func (c *Coupon) PartnerID() string     { return c.partnerID }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) DiscountRate() float64 { return c.discountRate }
func (c *Coupon) RequiredBadges() int   { return c.requiredBadges }
func (c *Coupon) ValidUntil() time.Time { return c.validUntil }
func (c *Coupon) IsUsed() bool          { return c.isUsed }
func (c *Coupon) UsedAt() *time.Time    { return c.usedAt }
func (c *Coupon) Description() string   { return c.description }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
