package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marina-ops/internal/domain/user"
	"marina-ops/internal/handler/api"
	"marina-ops/internal/handler/middleware"
	"marina-ops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Berth      *api.BerthHandler
	Booking    *api.BookingHandler
	Inspection *api.InspectionHandler
	Violation  *api.ViolationHandler
	Damage     *api.DamageHandler
	Report     *api.ReportHandler
	User       *api.UserHandler
	Realtime   *api.RealtimeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/ws", authMiddleware.RequireAuth(), h.Realtime.Stream)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		berths := apiGroup.Group("/berths")
		berths.Use(authMiddleware.RequireAuth())
		{
			manage := authMiddleware.RequireCapability(user.CapManageBerths)
			addRoutes(berths, []route{
				{Method: http.MethodGet, Path: "/map", Handler: h.Berth.MapView, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapViewMap)}},
				{Method: http.MethodGet, Path: "", Handler: h.Berth.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Berth.Get},
				{Method: http.MethodGet, Path: "/:id/inspections", Handler: h.Inspection.HistoryForBerth},
				{Method: http.MethodPost, Path: "", Handler: h.Berth.Place, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Berth.Update, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id/position", Handler: h.Berth.MoveMarker, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Berth.SetStatus, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Berth.Remove, Mw: []gin.HandlerFunc{manage}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			manage := authMiddleware.RequireCapability(user.CapManageBookings)
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/arrivals", Handler: h.Booking.Arrivals},
				{Method: http.MethodGet, Path: "/departures", Handler: h.Booking.Departures},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapCreateBooking)}},
				{Method: http.MethodPut, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id/no-show", Handler: h.Booking.MarkNoShow, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPut, Path: "/:id/check-out", Handler: h.Booking.CheckOut, Mw: []gin.HandlerFunc{manage}},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Booking.RecordPayment, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapRecordPayment)}},
			})
		}

		inspections := apiGroup.Group("/inspections")
		inspections.Use(authMiddleware.RequireAuth())
		{
			addRoutes(inspections, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inspection.ForDay},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Inspection.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Inspection.Submit, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapPerformInspection)}},
			})
		}

		violations := apiGroup.Group("/violations")
		violations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(violations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Violation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Violation.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Violation.Report, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapPerformInspection)}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Violation.Advance, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapManageViolations)}},
			})
		}

		damage := apiGroup.Group("/damage-reports")
		damage.Use(authMiddleware.RequireAuth())
		{
			addRoutes(damage, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Damage.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Damage.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Damage.Report, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapReportDamage)}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Damage.Advance, Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapManageDamage)}},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth(), authMiddleware.RequireCapability(user.CapViewReports))
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/occupancy", Handler: h.Report.Occupancy},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Report.Revenue},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireCapability(user.CapManageUsers))
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
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
