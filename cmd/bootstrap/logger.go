package bootstrap

import (
	"log/slog"

	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewSlogLogger),
)

func NewSlogLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}

// FxLogger routes fx lifecycle events through the app logger at debug level.
var FxLogger = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
})
