package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Nickname   string     `json:"nickname"`
	Role       string     `json:"role"`
	VisitCount int        `json:"visit_count"`
	LastVisit  *time.Time `json:"last_visit,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BadgeView is the public catalog entry. The static QR token is never exposed.
type BadgeView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Location    LocationView `json:"location"`
	Rarity      string       `json:"rarity"`
	IsActive    bool         `json:"is_active"`
}

type LocationView struct {
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// UserBadgeRow is one row of the user_badges table.
type UserBadgeRow struct {
	BadgeID        string
	ValidationType string
	QRTimestamp    *time.Time
	AcquiredAt     time.Time
}

// OwnedBadgeView joins a catalog badge with the user's acquisition record
type OwnedBadgeView struct {
	BadgeView
	ValidationType string     `json:"validation_type"`
	QRTimestamp    *time.Time `json:"qr_timestamp,omitempty"`
	AcquiredAt     time.Time  `json:"acquired_at"`
}

type PartnerView struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Location      LocationView `json:"location"`
	DiscountRate  float64      `json:"discount_rate"`
	MinimumBadges int          `json:"minimum_badges"`
	Contact       string       `json:"contact"`
	Description   string       `json:"description,omitempty"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID             uuid.UUID  `json:"id"`
	PartnerID      string     `json:"partner_id"`
	Code           string     `json:"code"`
	DiscountRate   float64    `json:"discount_rate"`
	RequiredBadges int        `json:"required_badges"`
	ValidUntil     time.Time  `json:"valid_until"`
	IsUsed         bool       `json:"is_used"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
