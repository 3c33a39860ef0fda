//go:build unit

package badge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
)

func TestNewRarity(t *testing.T) {
	tests := []struct {
		in    string
		want  badge.Rarity
		errIs error
	}{
		{in: "", want: badge.RarityBronze},
		{in: "bronze", want: badge.RarityBronze},
		{in: "Silver", want: badge.RaritySilver},
		{in: " gold ", want: badge.RarityGold},
		{in: "platinum", errIs: badge.ErrInvalidRarity},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := badge.NewRarity(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadge_Geofenced(t *testing.T) {
	b := &badge.Badge{}
	assert.False(t, b.Geofenced())

	b.Location.Coordinates = &badge.Coordinates{Longitude: 126.5312, Latitude: 33.3617}
	assert.True(t, b.Geofenced())
	assert.Equal(t, 33.3617, b.Location.Coordinates.Point().Lat)
	assert.Equal(t, 126.5312, b.Location.Coordinates.Point().Lng)

	b.Location.Coordinates = &badge.Coordinates{Longitude: math.NaN(), Latitude: 33.3617}
	assert.False(t, b.Geofenced())
}
