package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

type CouponResponse struct {
	ID             uuid.UUID  `json:"id"`
	PartnerID      string     `json:"partnerId"`
	Code           string     `json:"code"`
	DiscountRate   float64    `json:"discountRate"`
	RequiredBadges int        `json:"requiredBadges"`
	ValidUntil     time.Time  `json:"validUntil"`
	IsUsed         bool       `json:"isUsed"`
	UsedAt         *time.Time `json:"usedAt,omitempty"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromCouponViews(views []queries.CouponView) ([]CouponResponse, error) {
	return mapSlice[CouponResponse](views)
}

type IssuedCouponResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	PartnerID    string    `json:"partnerId"`
	DiscountRate float64   `json:"discountRate"`
	BadgeCount   int       `json:"badgeCount"`
	ValidUntil   time.Time `json:"validUntil"`
	Description  string    `json:"description"`
}

func FromIssueCouponResult(r *commands.IssueCouponResult) *IssuedCouponResponse {
	return &IssuedCouponResponse{
		ID:           r.CouponID,
		Code:         r.Code,
		PartnerID:    r.PartnerID,
		DiscountRate: r.DiscountRate,
		BadgeCount:   r.BadgeCount,
		ValidUntil:   r.ValidUntil,
		Description:  r.Description,
	}
}

type RedeemedCouponResponse struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	UsedAt time.Time `json:"usedAt"`
}

func FromRedeemCouponResult(r *commands.RedeemCouponResult) *RedeemedCouponResponse {
	return &RedeemedCouponResponse{ID: r.CouponID, Code: r.Code, UsedAt: r.UsedAt}
}
