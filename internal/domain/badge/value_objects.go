package badge

import (
	"errors"
	"strings"
)

var ErrInvalidRarity = errors.New("invalid badge rarity")

type Rarity string

const (
	RarityBronze Rarity = "bronze"
	RaritySilver Rarity = "silver"
	RarityGold   Rarity = "gold"
)

func (r Rarity) String() string {
	return string(r)
}

func (r Rarity) IsValid() bool {
	switch r {
	case RarityBronze, RaritySilver, RarityGold:
		return true
	default:
		return false
	}
}

// NewRarity defaults an empty value to bronze.
func NewRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RarityBronze, nil
	}
	r := Rarity(s)
	if !r.IsValid() {
		return "", ErrInvalidRarity
	}
	return r, nil
}
