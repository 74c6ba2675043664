package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ppe-dashboard/internal/config"
)

const redisKeyPrefix = "session:"

// RedisRecorder stores the session record in Redis so it survives restarts
// of the dashboard process.
type RedisRecorder struct {
	client redis.UniversalClient
}

// NewRedisRecorder connects to Redis using the provided configuration.
// Connectivity problems are logged, not fatal; the first Get/Set surfaces them.
func NewRedisRecorder(cfg config.RedisConfig, logger *zap.Logger) *RedisRecorder {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisRecorder{client: client}
}

// NewRedisRecorderWithClient wraps an existing client (used by tests).
func NewRedisRecorderWithClient(client redis.UniversalClient) *RedisRecorder {
	return &RedisRecorder{client: client}
}

func (r *RedisRecorder) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisRecorder) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisRecorder) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Close releases the underlying client.
func (r *RedisRecorder) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

// Ping verifies Redis connectivity for readiness checks.
func (r *RedisRecorder) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}
