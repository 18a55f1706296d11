package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with
// a ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*goredis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := goredis.NewClient(&goredis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisBackend is the primary token store backend. Entries carry no
// expiry: the credential's lifetime is decided by the upstream CMS, and a
// stale entry is harmless because the first rejected request forces a
// logout that clears it.
//
// Key schema: session:{sid}:{key}
type RedisBackend struct {
	rdb *goredis.Client
}

// NewRedisBackend wraps an established Redis client.
func NewRedisBackend(rdb *goredis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Get(ctx context.Context, sid, key string) (string, bool, error) {
	val, err := b.rdb.Get(ctx, redisKey(sid, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, sid, key, value string) error {
	if err := b.rdb.Set(ctx, redisKey(sid, key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *RedisBackend) Remove(ctx context.Context, sid, key string) error {
	if err := b.rdb.Del(ctx, redisKey(sid, key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func redisKey(sid, key string) string {
	return "session:" + sid + ":" + key
}
