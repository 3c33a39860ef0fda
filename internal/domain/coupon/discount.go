package coupon

import (
	"errors"
	"math"
)

var (
	ErrNegativeBadgeCount = errors.New("badge count cannot be negative")
	ErrInvalidBaseRate    = errors.New("base discount rate must be a non-negative finite number")
)

// tier caps are business ceilings and apply regardless of the partner's base rate.
type tier struct {
	minBadges int
	bonus     float64
	cap       float64
}

var tiers = []tier{
	{minBadges: 5, bonus: 10, cap: 20},
	{minBadges: 3, bonus: 5, cap: 15},
	{minBadges: 1, bonus: 0, cap: 10},
}

// EffectiveDiscount maps a badge count and a partner base rate to the percent off granted.
func EffectiveDiscount(badgeCount int, baseRate float64) (float64, error) {
	if badgeCount < 0 {
		return 0, ErrNegativeBadgeCount
	}
	if baseRate < 0 || math.IsNaN(baseRate) || math.IsInf(baseRate, 0) {
		return 0, ErrInvalidBaseRate
	}

	for _, t := range tiers {
		if badgeCount >= t.minBadges {
			return math.Min(baseRate+t.bonus, t.cap), nil
		}
	}
	return 0, nil
}
