//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"delivery-admin/cmd/bootstrap"
	"delivery-admin/cmd/bootstrap/components"
	"delivery-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// 本番と同じfxモジュールでルーターを組み立てる
// 設定とDBプールだけテスト用に差し替える
// ------------------------------------------------------------
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(
			gin.New,
			bootstrap.NewTranslator,
			bootstrap.NewMetrics,
			bootstrap.NewSlogLogger,
		),
		bootstrap.SessionModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	return router
}
