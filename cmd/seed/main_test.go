//go:build unit

package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := catalog.NewMemoryCatalog()

	require.NoError(t, seed(ctx, logger, c))

	badges, err := c.ListBadges(ctx)
	require.NoError(t, err)
	assert.Len(t, badges, len(starterBadges()))

	hallasan, err := c.FindByQRToken(ctx, "HALLASAN_SUMMIT_2024")
	require.NoError(t, err)
	require.NotNil(t, hallasan)
	assert.True(t, hallasan.Geofenced())

	partners, err := c.ListActivePartners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, len(starterPartners()))

	t.Run("second run leaves the catalog alone", func(t *testing.T) {
		require.NoError(t, seed(ctx, logger, c))
		again, err := c.ListBadges(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(badges))
	})
}

func TestStarterPartnersAreValid(t *testing.T) {
	for _, p := range starterPartners() {
		assert.NoError(t, p.Validate(), p.Name)
	}
}
