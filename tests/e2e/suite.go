//go:build e2e

package e2e

import (
	"log/slog"

	"delivery-admin/internal/pkg/config"
	"delivery-admin/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SharedSuite gives every e2e suite a router wired like production on top
// of a private database. Each subtest starts from a truncated schema.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	info := postgresContainer(t)
	pool, dbCfg := createDatabase(t, info)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	s.DB = pool
	s.Config = cfg
	s.Router = buildApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました", "database", dbCfg.DBName, "port", info.Port.Port())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
}
