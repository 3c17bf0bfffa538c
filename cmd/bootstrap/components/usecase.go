package components

import (
	"marina-ops/internal/pkg/clock"
	"marina-ops/internal/usecase"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBerthCommands,
		commands.NewBookingCommands,
		commands.NewInspectionCommands,
		commands.NewViolationCommands,
		commands.NewDamageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBerthQueries,
		queries.NewBookingQueries,
		queries.NewInspectionQueries,
		queries.NewViolationQueries,
		queries.NewDamageQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
