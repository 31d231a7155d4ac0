package components

import (
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/jwt"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerCommands,
		commands.NewAddressCommands,
		commands.NewTemplateCommands,
		commands.NewSlotCommands,
		commands.NewZoneCommands,
		commands.NewReservationCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, tokens *jwt.Service, cfg config.Config) commands.SessionCommands {
			return commands.NewSessionCommands(uow, clk, tokens, cfg.Session.Duration)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewAddressQueries,
		queries.NewTemplateQueries,
		queries.NewSlotQueries,
		queries.NewZoneQueries,
		queries.NewReservationQueries,
		queries.NewSessionQueries,
		queries.NewAvailabilityQueries,
		queries.NewLocationQueries,
	),
)
