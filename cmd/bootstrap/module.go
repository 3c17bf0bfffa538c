package bootstrap

import (
	"marina-ops/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RealtimeModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
