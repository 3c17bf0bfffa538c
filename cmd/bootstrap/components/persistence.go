package components

import (
	"marina-ops/internal/infra/db"
	"marina-ops/internal/infra/readstore"
	"marina-ops/internal/infra/uow"
	"marina-ops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,

		fx.Annotate(
			readstore.NewBerthReadStore,
			fx.As(new(queries.BerthViewRepo)),
			fx.As(new(queries.BerthDirectory)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewInspectionReadStore,
			fx.As(new(queries.InspectionViewRepo)),
			fx.As(new(queries.InspectionLookup)),
		),
		fx.Annotate(
			readstore.NewViolationReadStore,
			fx.As(new(queries.ViolationViewRepo)),
		),
		fx.Annotate(
			readstore.NewDamageReadStore,
			fx.As(new(queries.DamageViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
