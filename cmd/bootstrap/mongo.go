package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/cmd/bootstrap/components"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

const mongoConnectTimeout = 10 * time.Second

// MongoModule backs the badge and partner catalog with MongoDB.
var MongoModule = fx.Module("mongo",
	fx.Provide(
		NewMongoDatabase,
		catalog.NewMongoCatalog,
	),
	components.CatalogBindings(func(c *catalog.MongoCatalog) *catalog.MongoCatalog { return c }),
	fx.Invoke(ensureCatalogIndexes),
)

func NewMongoDatabase(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("closing mongo client")
			return client.Disconnect(ctx)
		},
	})

	return client.Database(cfg.Mongo.Database), nil
}

func ensureCatalogIndexes(lc fx.Lifecycle, c *catalog.MongoCatalog) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.EnsureIndexes(ctx)
		},
	})
}
