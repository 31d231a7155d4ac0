package bootstrap

import (
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/i18n"
	"delivery-admin/internal/pkg/metrics"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewTranslator,
		NewMetrics,
	),
)

func NewTranslator(cfg config.Config) *i18n.Translator {
	return i18n.New(cfg.Server.DefaultLanguage)
}

// NewMetrics returns nil when metrics are disabled; every recorder accepts a
// nil *Metrics.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(cfg.Metrics.Namespace)
}
