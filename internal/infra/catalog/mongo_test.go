//go:build e2e

package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/partner"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/builder"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("jeju_test")
}

func TestMongoCatalog(t *testing.T) {
	ctx := context.Background()
	database := startMongo(t)
	c := catalog.NewMongoCatalog(database)
	require.NoError(t, c.EnsureIndexes(ctx))

	b := builder.NewBadgeBuilder().Build()
	badgeID, err := c.InsertBadge(ctx, b)
	require.NoError(t, err)
	require.Equal(t, b.ID, badgeID)

	t.Run("find by qr token", func(t *testing.T) {
		got, err := c.FindByQRToken(ctx, b.Location.QRCode)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, badgeID, got.ID)
		require.NotNil(t, got.Location.Coordinates)
		assert.InDelta(t, 33.3617, got.Location.Coordinates.Latitude, 1e-9)
	})

	t.Run("unknown token", func(t *testing.T) {
		got, err := c.FindByQRToken(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed id is absent", func(t *testing.T) {
		got, err := c.FindByID(ctx, "not-hex")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("qr token is unique", func(t *testing.T) {
		dup := builder.NewBadgeBuilder().With(func(bb *builder.BadgeBuilder) { bb.ID = "" }).Build()
		_, err := c.InsertBadge(ctx, dup)
		assert.Error(t, err)
	})

	t.Run("document without isActive counts as active", func(t *testing.T) {
		_, err := database.Collection(catalog.BadgesCollection).InsertOne(ctx, bson.M{
			"name":     "Legacy",
			"location": bson.M{"name": "Udo", "qrCode": "JEJU_UDO_001"},
		})
		require.NoError(t, err)

		got, err := c.FindByQRToken(ctx, "JEJU_UDO_001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsActive)
	})

	t.Run("partners", func(t *testing.T) {
		p := builder.NewPartnerBuilder().With(func(p *partner.Partner) { p.ID = "" }).Build()
		id, err := c.InsertPartner(ctx, p)
		require.NoError(t, err)

		list, err := c.ListActivePartners(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		p.ID = id
		p.IsActive = false
		require.NoError(t, c.UpdatePartner(ctx, p))

		list, err = c.ListActivePartners(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		got, err := c.FindPartnerByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsActive)

		err = c.UpdatePartner(ctx, &partner.Partner{ID: "64b7f0c2e1a2b3c4d5e6ffff", Name: "ghost", MinimumBadges: 1})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
