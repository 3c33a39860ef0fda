package components

import (
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBadgeCommands,
		commands.NewPartnerCommands,
		func(uow shared.UnitOfWork, partners commands.PartnerFinder, clk clock.Clock, cfg config.Config) commands.CouponCommands {
			return commands.NewCouponCommands(uow, partners, clk, cfg.Coupon.Validity)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBadgeQueries,
		queries.NewPartnerQueries,
		queries.NewCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
