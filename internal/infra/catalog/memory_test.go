//go:build unit

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/builder"
)

func TestMemoryCatalog_Badges(t *testing.T) {
	ctx := context.Background()
	c := catalog.NewMemoryCatalog()

	active := builder.NewBadgeBuilder().Build()
	retired := builder.NewBadgeBuilder().With(func(b *builder.BadgeBuilder) {
		b.ID = ""
		b.QRCode = "JEJU_RETIRED_001"
		b.IsActive = false
	}).Build()

	_, err := c.InsertBadge(ctx, active)
	require.NoError(t, err)
	retiredID, err := c.InsertBadge(ctx, retired)
	require.NoError(t, err)
	assert.Len(t, retiredID, 24, "generated ids are object id hex")

	t.Run("qr token lookup", func(t *testing.T) {
		got, err := c.FindByQRToken(ctx, active.Location.QRCode)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, active.ID, got.ID)
	})

	t.Run("inactive badge is not found by token", func(t *testing.T) {
		got, err := c.FindByQRToken(ctx, "JEJU_RETIRED_001")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("inactive badge is still found by id", func(t *testing.T) {
		got, err := c.FindByID(ctx, retiredID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsActive)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := c.FindByID(ctx, "64b7f0c2e1a2b3c4d5e6ffff")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("batch lookup skips unknown ids", func(t *testing.T) {
		got, err := c.FindBadgesByIDs(ctx, []string{active.ID, "64b7f0c2e1a2b3c4d5e6ffff"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, active.ID, got[0].ID)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		got, err := c.ListBadges(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Less(t, got[0].ID, got[1].ID)
	})

	t.Run("returned badges are copies", func(t *testing.T) {
		got, err := c.FindByID(ctx, active.ID)
		require.NoError(t, err)
		got.Name = "changed"

		again, err := c.FindByID(ctx, active.ID)
		require.NoError(t, err)
		assert.Equal(t, active.Name, again.Name)
	})
}

func TestMemoryCatalog_Partners(t *testing.T) {
	ctx := context.Background()
	c := catalog.NewMemoryCatalog()

	open := builder.NewPartnerBuilder().Build()
	closed := builder.NewPartnerBuilder().With(func(p *partner.Partner) {
		p.ID = ""
		p.Name = "Closed Cafe"
		p.IsActive = false
	}).Build()

	_, err := c.InsertPartner(ctx, open)
	require.NoError(t, err)
	closedID, err := c.InsertPartner(ctx, closed)
	require.NoError(t, err)

	t.Run("active listing hides inactive partners", func(t *testing.T) {
		got, err := c.ListActivePartners(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, open.ID, got[0].ID)
	})

	t.Run("lookup by id includes inactive partners", func(t *testing.T) {
		got, err := c.FindPartnerByID(ctx, closedID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsActive)
	})

	t.Run("update", func(t *testing.T) {
		updated := *open
		updated.DiscountRate = 25
		require.NoError(t, c.UpdatePartner(ctx, &updated))

		got, err := c.FindPartnerByID(ctx, open.ID)
		require.NoError(t, err)
		assert.InDelta(t, 25, got.DiscountRate, 0.001)
	})

	t.Run("update unknown partner", func(t *testing.T) {
		err := c.UpdatePartner(ctx, &partner.Partner{ID: "64b7f0c2e1a2b3c4d5e6ffff"})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

