package bootstrap

import (
	"context"
	"log/slog"

	"delivery-admin/internal/infra/db"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	fx.Invoke(registerPoolMetrics),
)

// NewDB connects eagerly so a bad DSN stops the app before it listens.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("データベースに接続しました", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}

func registerPoolMetrics(m *metrics.Metrics, cfg config.Config, pool *pgxpool.Pool) {
	m.RegisterPool(cfg.Metrics.Namespace, pool.Stat)
}
