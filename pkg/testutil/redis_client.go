package testutil

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type MockRedisClient struct {
	PingFunc          func(ctx context.Context) error
	ZAddFunc          func(ctx context.Context, key string, z redis.Z) error
	ZRangeByScoreFunc func(ctx context.Context, key string, min, max string, limit int) ([]string, error)
	ZRemFunc          func(ctx context.Context, key string, members ...string) (int64, error)
	ZCardFunc         func(ctx context.Context, key string) (int64, error)
}

func (m *MockRedisClient) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}

	return nil
}

func (m *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	if m.ZAddFunc != nil {
		return m.ZAddFunc(ctx, key, z)
	}

	return nil
}

func (m *MockRedisClient) ZRangeByScore(ctx context.Context, key string, min, max string, limit int) ([]string, error) {
	if m.ZRangeByScoreFunc != nil {
		return m.ZRangeByScoreFunc(ctx, key, min, max, limit)
	}

	return nil, nil
}

func (m *MockRedisClient) ZRem(ctx context.Context, key string, members ...string) (int64, error) {
	if m.ZRemFunc != nil {
		return m.ZRemFunc(ctx, key, members...)
	}

	return int64(len(members)), nil
}

func (m *MockRedisClient) ZCard(ctx context.Context, key string) (int64, error) {
	if m.ZCardFunc != nil {
		return m.ZCardFunc(ctx, key)
	}

	return 0, nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
