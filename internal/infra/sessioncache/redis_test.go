//go:build e2e

package sessioncache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"delivery-admin/internal/infra/sessioncache"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err, "Redisコンテナの起動に失敗")
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRedisStore(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	store, err := sessioncache.NewRedisStore(ctx, sessioncache.RedisConfig{Addr: addr, Key: "test:session"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	t.Run("miss", func(t *testing.T) {
		rec, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("save sets a ttl matching the session expiry", func(t *testing.T) {
		rec := sampleRecord()
		rec.ExpiresAt = time.Now().Add(time.Minute)

		require.NoError(t, store.Save(ctx, rec))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.SessionID, got.SessionID)
		assert.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))

		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		ttl, err := client.TTL(ctx, "test:session").Result()
		require.NoError(t, err)
		assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 5)
	})

	t.Run("expired record is not written", func(t *testing.T) {
		rec := sampleRecord()
		rec.ExpiresAt = time.Now().Add(-time.Second)

		require.NoError(t, store.Save(ctx, rec))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("clear", func(t *testing.T) {
		rec := sampleRecord()
		rec.ExpiresAt = time.Now().Add(time.Minute)
		require.NoError(t, store.Save(ctx, rec))

		require.NoError(t, store.Clear(ctx))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
