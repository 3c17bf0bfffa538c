package bootstrap

import (
	"context"
	"log/slog"

	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/config"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		func(hub *realtime.Hub) realtime.Publisher { return hub },
	),
)

// NewHub ties the hub's run loop to the fx lifecycle so clients are closed on
// shutdown.
func NewHub(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime, logger)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return hub
}
