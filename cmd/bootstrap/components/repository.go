package components

import (
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/commands"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/queries"
)

// CatalogBindings exposes the value built by constructor as every catalog port.
// Swapping the catalog backend means passing a different constructor.
func CatalogBindings(constructor any) fx.Option {
	return fx.Provide(
		fx.Annotate(
			constructor,
			fx.As(new(qrcode.BadgeCatalog)),
			fx.As(new(queries.BadgeCatalogReader)),
			fx.As(new(queries.PartnerCatalogReader)),
			fx.As(new(commands.PartnerFinder)),
			fx.As(new(commands.PartnerStore)),
		),
	)
}
