package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"delivery-admin/internal/handler/api"
	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/i18n"
	"delivery-admin/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Customers    *api.CustomerHandler
	Addresses    *api.AddressHandler
	Templates    *api.TemplateHandler
	Slots        *api.SlotHandler
	Zones        *api.ZoneHandler
	Reservations *api.ReservationHandler
	Sessions     *api.SessionHandler
	Availability *api.AvailabilityHandler
	Locations    *api.LocationHandler
}

type Middlewares struct {
	Session   *middleware.SessionMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, tr *i18n.Translator, m *metrics.Metrics, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, logger, tr, m)
	setupRoutes(engine, cfg, m, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, tr *i18n.Translator, m *metrics.Metrics) {
	// Locale goes before Recovery so panic responses are translated too.
	// The access log wraps Recovery so a panic is still logged as a 500.
	engine.Use(middleware.Locale(tr))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled && m != nil {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && m != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Customers.List},
			{Method: http.MethodPost, Path: "", Handler: h.Customers.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Customers.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.Delete},
			{Method: http.MethodGet, Path: "/:id/delivery-addresses", Handler: h.Addresses.ListByCustomer},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservations.ListByCustomer},
		})

		addRoutes(apiGroup.Group("/delivery-addresses"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Addresses.List},
			{Method: http.MethodPost, Path: "", Handler: h.Addresses.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Addresses.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Addresses.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Addresses.Delete},
			{Method: http.MethodGet, Path: "/:id/reservation-suggestion", Handler: h.Addresses.Suggest},
		})

		addRoutes(apiGroup.Group("/time-slot-templates"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Templates.List},
			{Method: http.MethodPost, Path: "", Handler: h.Templates.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Templates.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Templates.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Templates.Delete},
		})

		addRoutes(apiGroup.Group("/delivery-slots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Slots.List},
			{Method: http.MethodPost, Path: "", Handler: h.Slots.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Slots.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Slots.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Slots.Delete},
		})

		addRoutes(apiGroup.Group("/coverage-zones"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Zones.List},
			{Method: http.MethodPost, Path: "", Handler: h.Zones.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Zones.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Zones.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Zones.Delete},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservations.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Delete},
		})

		addRoutes(apiGroup.Group("/active-sessions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Sessions.ListActive},
			{Method: http.MethodPost, Path: "", Handler: h.Sessions.Login, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Sessions.Me, Mw: []gin.HandlerFunc{mw.Session.RequireSession()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Sessions.Validate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Sessions.Logout},
		})

		addRoutes(apiGroup.Group("/regions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Locations.ListRegions},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Locations.GetRegion},
			{Method: http.MethodGet, Path: "/:id/cities", Handler: h.Locations.ListCities},
		})

		addRoutes(apiGroup.Group("/cities"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Locations.GetCity},
			{Method: http.MethodGet, Path: "/:id/communes", Handler: h.Locations.ListCommunes},
		})

		apiGroup.GET("/communes/:id", h.Locations.GetCommune)
		apiGroup.GET("/availability", h.Availability.Resolve)
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
