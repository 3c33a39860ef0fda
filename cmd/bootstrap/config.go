package bootstrap

import (
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
