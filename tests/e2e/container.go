//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:17"
	postgresUser     = "test"
	postgresPassword = "testpass"
	postgresPort     = nat.Port("5432/tcp")
)

var (
	containerOnce sync.Once
	container     ContainerInfo
	containerErr  error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) DSN(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, c.Host, c.Port.Port(), dbName)
}

// ------------------------------------------------------------
// PostgreSQLコンテナはプロセス内で一度だけ起動する（後始末はryukに任せる）
// ------------------------------------------------------------
func postgresContainer(t *testing.T) ContainerInfo {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        postgresImage,
				ExposedPorts: []string{string(postgresPort)},
				Env: map[string]string{
					"POSTGRES_USER":     postgresUser,
					"POSTGRES_PASSWORD": postgresPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "UTC",
				},
				// データはRAMに置き、耐久性の設定は全部切る
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
					"-c", "timezone=UTC",
				},
				WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
					return ContainerInfo{Host: host, Port: port}.DSN("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "delivery-admin-e2e"},
			},
			Started: true,
		})
		if err != nil {
			containerErr = err
			return
		}

		host, err := c.Host(ctx)
		if err != nil {
			containerErr = err
			return
		}
		port, err := c.MappedPort(ctx, postgresPort)
		if err != nil {
			containerErr = err
			return
		}
		container = ContainerInfo{Host: host, Port: port}
	})

	require.NoError(t, containerErr, "PostgreSQLコンテナの起動に失敗")
	return container
}
