package components

import (
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/api"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBadgeHandler,
		api.NewAdminHandler,
		api.NewPartnerHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	badge *api.BadgeHandler,
	admin *api.AdminHandler,
	partner *api.PartnerHandler,
	coupon *api.CouponHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Badge:   badge,
		Admin:   admin,
		Partner: partner,
		Coupon:  coupon,
	}
}
