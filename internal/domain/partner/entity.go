package partner

import (
	"errors"
	"math"
	"strings"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
)

var (
	ErrMissingField        = errors.New("partner name, category and contact are required")
	ErrInvalidDiscountRate = errors.New("discount rate must be between 0 and 100")
	ErrInvalidMinimum      = errors.New("minimum badges must be at least 1")
)

type Partner struct {
	ID            string
	Name          string
	Category      string
	Location      Location
	DiscountRate  float64
	MinimumBadges int
	Contact       string
	Description   string
	IsActive      bool
}

type Location struct {
	Name        string
	Address     string
	Coordinates *badge.Coordinates
}

// Eligible reports whether badgeCount meets the partner's minimum.
func (p *Partner) Eligible(badgeCount int) bool {
	return p.IsActive && badgeCount >= p.MinimumBadges
}

func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" || strings.TrimSpace(p.Contact) == "" {
		return ErrMissingField
	}
	if math.IsNaN(p.DiscountRate) || p.DiscountRate < 0 || p.DiscountRate > 100 {
		return ErrInvalidDiscountRate
	}
	if p.MinimumBadges < 1 {
		return ErrInvalidMinimum
	}
	return nil
}
