package components

import (
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/readstore"
	"delivery-admin/internal/infra/uow"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// DeliveryAddress
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AddressReadQueries)),
		),
		fx.Annotate(
			readstore.NewAddressReadStore,
			fx.As(new(queries.AddressReadStore)),
		),
		// TimeSlotTemplate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TemplateReadQueries)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		// DeliverySlot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// CoverageZone
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ZoneReadQueries)),
		),
		fx.Annotate(
			readstore.NewZoneReadStore,
			fx.As(new(queries.ZoneReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// ActiveSession
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SessionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
		// Location catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LocationReadQueries)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
		// Availability snapshot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityLoader)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}

var _ shared.UnitOfWork = (*uow.PostgresUoW)(nil)
