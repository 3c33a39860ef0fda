//go:build unit

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/badge"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
)

func TestBadgeDocument_SeedShape(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"_id":  id,
		"name": "Seongsan Ilchulbong",
		"location": bson.M{
			"name":        "Seongsan",
			"coordinates": bson.A{126.9423, 33.4584},
			"qrCode":      "JEJU_SEONGSAN_001",
		},
		"rarity": "silver",
	})
	require.NoError(t, err)

	var doc badgeDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toDomain()

	want := &badge.Badge{
		ID:   id.Hex(),
		Name: "Seongsan Ilchulbong",
		Location: badge.Location{
			Name:        "Seongsan",
			Coordinates: &badge.Coordinates{Latitude: 33.4584, Longitude: 126.9423},
			QRCode:      "JEJU_SEONGSAN_001",
		},
		Rarity:   badge.RaritySilver,
		IsActive: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toDomain() mismatch (-want +got):\n%s", diff)
	}
}

func TestBadgeDocument_Defaults(t *testing.T) {
	inactive := false

	tests := []struct {
		name       string
		doc        badgeDocument
		wantRarity badge.Rarity
		wantActive bool
		wantCoords bool
	}{
		{name: "unknown rarity falls back to bronze", doc: badgeDocument{Rarity: "mythic"}, wantRarity: badge.RarityBronze, wantActive: true},
		{name: "explicitly inactive", doc: badgeDocument{Rarity: "gold", IsActive: &inactive}, wantRarity: badge.RarityGold},
		{name: "single coordinate is ignored", doc: badgeDocument{Rarity: "gold", Location: locationDocument{Coordinates: []float64{126.5}}}, wantRarity: badge.RarityGold, wantActive: true},
		{name: "coordinate pair", doc: badgeDocument{Rarity: "gold", Location: locationDocument{Coordinates: []float64{126.5, 33.3}}}, wantRarity: badge.RarityGold, wantActive: true, wantCoords: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.doc.toDomain()
			assert.Equal(t, tt.wantRarity, got.Rarity)
			assert.Equal(t, tt.wantActive, got.IsActive)
			assert.Equal(t, tt.wantCoords, got.Location.Coordinates != nil)
		})
	}
}

func TestFromBadge(t *testing.T) {
	t.Run("coordinates stored longitude first", func(t *testing.T) {
		b := &badge.Badge{
			Name:     "Hallasan",
			Location: badge.Location{Coordinates: &badge.Coordinates{Latitude: 33.3617, Longitude: 126.5312}},
			Rarity:   badge.RarityGold,
		}
		doc, err := fromBadge(b)
		require.NoError(t, err)
		assert.Equal(t, []float64{126.5312, 33.3617}, doc.Location.Coordinates)
		assert.True(t, doc.ID.IsZero())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := fromBadge(&badge.Badge{ID: "not-an-object-id"})
		assert.Error(t, err)
	})
}

func TestFromPartner_KeepsInactiveFlag(t *testing.T) {
	id := primitive.NewObjectID()
	p := &partner.Partner{ID: id.Hex(), Name: "Cafe", MinimumBadges: 1, IsActive: false}

	doc, err := fromPartner(p)
	require.NoError(t, err)
	require.NotNil(t, doc.IsActive)
	assert.False(t, *doc.IsActive)
	assert.Equal(t, id, doc.ID)
	assert.False(t, doc.toDomain().IsActive)
}
