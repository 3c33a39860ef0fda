package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/middleware"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
