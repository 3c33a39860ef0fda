package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/db"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/readstore"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/infra/uow"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewUserBadgeReadStore,
			fx.As(new(queries.UserBadgeReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
