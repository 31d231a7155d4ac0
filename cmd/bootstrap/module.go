package bootstrap

import (
	"delivery-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole API server minus the HTTP listener and the gin engine,
// which cmd/main.go provides.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	DBModule,
	SessionModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
