package sessioncache

import (
	"context"
	"encoding/json"
	"time"

	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/session"

	"github.com/go-redis/redis/v8"
)

const DefaultRedisKey = "delivery-admin:console:session"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// RedisStore keeps the record under a single key that expires with the session.
type RedisStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	return NewRedisStoreFromClient(client, cfg.Key), nil
}

func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, now: time.Now}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context) (*session.Record, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, errs.Wrap(err, "failed to read cached session")
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errs.Mark(err, session.ErrMalformedRecord)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, rec session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}

	ttl := rec.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Clear(ctx)
	}
	return s.client.Set(ctx, s.key, data, ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
