package bootstrap

import (
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
