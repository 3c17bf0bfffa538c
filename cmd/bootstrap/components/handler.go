package components

import (
	"marina-ops/internal/handler"
	"marina-ops/internal/handler/api"
	"marina-ops/internal/handler/middleware"
	"marina-ops/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewBerthHandler,
		api.NewBookingHandler,
		api.NewInspectionHandler,
		api.NewViolationHandler,
		api.NewDamageHandler,
		api.NewReportHandler,
		api.NewUserHandler,
		api.NewRealtimeHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	berth *api.BerthHandler,
	booking *api.BookingHandler,
	inspection *api.InspectionHandler,
	violation *api.ViolationHandler,
	damage *api.DamageHandler,
	report *api.ReportHandler,
	user *api.UserHandler,
	rt *api.RealtimeHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Berth:      berth,
		Booking:    booking,
		Inspection: inspection,
		Violation:  violation,
		Damage:     damage,
		Report:     report,
		User:       user,
		Realtime:   rt,
	}
}
