package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartwash/internal/domain/user"
	"smartwash/internal/handler/api"
	"smartwash/internal/handler/middleware"
	"smartwash/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Wallet   *api.WalletHandler
	Location *api.LocationHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.Static("/uploads", cfg.Storage.BaseDir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	loginLimiter := middleware.NewRateLimiter(1, 5)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{loginLimiter.Limit()}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter.Limit()}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
			})
		}

		locations := apiGroup.Group("/locations")
		locations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Location.ListActive},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
				{Method: http.MethodGet, Path: "/:id/qr", Handler: h.Booking.OTPQRCode},
				{Method: http.MethodPost, Path: "/:id/verify", Handler: h.Booking.VerifyOTP,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleModerator)}},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: h.Wallet.Balance},
				{Method: http.MethodPost, Path: "/recharges", Handler: h.Wallet.Submit},
				{Method: http.MethodGet, Path: "/recharges", Handler: h.Wallet.ListMine},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			staff := admin.Group("")
			staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleModerator))
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.Transition},
				{Method: http.MethodGet, Path: "/recharges", Handler: h.Wallet.List},
				{Method: http.MethodGet, Path: "/locations", Handler: h.Location.ListAll},
			})

			adminOnly := admin.Group("")
			adminOnly.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/recharges/:id/approve", Handler: h.Wallet.Approve},
				{Method: http.MethodPost, Path: "/recharges/:id/reject", Handler: h.Wallet.Reject},
				{Method: http.MethodPost, Path: "/locations", Handler: h.Location.Create},
				{Method: http.MethodPut, Path: "/locations/:id", Handler: h.Location.Update},
				{Method: http.MethodPatch, Path: "/locations/:id/active", Handler: h.Location.SetActive},
				{Method: http.MethodPost, Path: "/users/:id/roles", Handler: h.Admin.AssignRole},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Admin.ListSettings},
				{Method: http.MethodPut, Path: "/settings/:key", Handler: h.Admin.UpdateSetting},
			})
		}
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
