package components

import (
	"delivery-admin/internal/handler"
	"delivery-admin/internal/handler/api"
	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewAddressHandler,
		api.NewTemplateHandler,
		api.NewSlotHandler,
		api.NewZoneHandler,
		api.NewReservationHandler,
		api.NewSessionHandler,
		api.NewAvailabilityHandler,
		api.NewLocationHandler,
		middleware.NewSessionMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	customers *api.CustomerHandler,
	addresses *api.AddressHandler,
	templates *api.TemplateHandler,
	slots *api.SlotHandler,
	zones *api.ZoneHandler,
	reservations *api.ReservationHandler,
	sessions *api.SessionHandler,
	availability *api.AvailabilityHandler,
	locations *api.LocationHandler,
) handler.Handlers {
	return handler.Handlers{
		Customers:    customers,
		Addresses:    addresses,
		Templates:    templates,
		Slots:        slots,
		Zones:        zones,
		Reservations: reservations,
		Sessions:     sessions,
		Availability: availability,
		Locations:    locations,
	}
}

func newMiddlewares(session *middleware.SessionMiddleware, rateLimit *middleware.RateLimiter) handler.Middlewares {
	return handler.Middlewares{Session: session, RateLimit: rateLimit}
}
