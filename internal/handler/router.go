package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/domain/user"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/api"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/middleware"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by NewRouter.
type Handlers struct {
	Auth    *api.AuthHandler
	Badge   *api.BadgeHandler
	Admin   *api.AdminHandler
	Partner *api.PartnerHandler
	Coupon  *api.CouponHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api", middleware.BodyLimit(middleware.MaxRequestBodyBytes))
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		badges := apiGroup.Group("/badges")
		addRoutes(badges, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Badge.List},
			{Method: http.MethodGet, Path: "/my", Handler: h.Badge.My, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/validate", Handler: h.Badge.Validate, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/scan", Handler: h.Badge.Scan, Mw: []gin.HandlerFunc{requireAuth}},
		})

		partners := apiGroup.Group("/partners")
		addRoutes(partners, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Partner.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Partner.Get},
		})

		coupons := apiGroup.Group("/coupons")
		coupons.Use(requireAuth)
		addRoutes(coupons, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Coupon.Issue},
			{Method: http.MethodGet, Path: "", Handler: h.Coupon.List},
			{Method: http.MethodPost, Path: "/:code/redeem", Handler: h.Coupon.Redeem},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/qr", Handler: h.Admin.GenerateQR},
			{Method: http.MethodPost, Path: "/partners", Handler: h.Admin.CreatePartner},
			{Method: http.MethodPatch, Path: "/partners/:id", Handler: h.Admin.UpdatePartner},
			{Method: http.MethodDelete, Path: "/partners/:id", Handler: h.Admin.DeactivatePartner},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
