//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/cmd/bootstrap"
	"github.com/Yanolja-Travel-Innovation-2025/backend/cmd/bootstrap/components"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/catalog"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
	"github.com/Yanolja-Travel-Innovation-2025/backend/tests/common/dbtest"
)

// environment is the running application a suite talks to.
type environment struct {
	pool    *pgxpool.Pool
	router  *gin.Engine
	cfg     config.Config
	catalog *catalog.MemoryCatalog
}

// setupE2EEnvironment gives each suite its own database on the shared container.
func setupE2EEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := dbtest.NewMigratedPool(t)
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	env := environment{pool: pool, cfg: cfg}
	app := fx.New(
		fx.Supply(pool, cfg),
		// The catalog lives in memory so suites can insert badges directly.
		fx.Provide(catalog.NewMemoryCatalog),
		components.CatalogBindings(func(c *catalog.MemoryCatalog) *catalog.MemoryCatalog { return c }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.QRModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.router, &env.catalog),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	require.NotNil(t, env.router, "application started without a router")
	return env
}

type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Catalog *catalog.MemoryCatalog
}

func (s *SharedSuite) SetupSuite() {
	env := setupE2EEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.Catalog = env.catalog
}

// SetupSubTest empties every table. The in-memory catalog is kept across subtests.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
