package xredis

import (
	"context"
	"time"

	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

type Client interface {
	Ping(ctx context.Context) error

	// Sorted set
	ZAdd(ctx context.Context, key string, z redis.Z) error
	ZRangeByScore(ctx context.Context, key string, min, max string, limit int) ([]string, error)
	ZRem(ctx context.Context, key string, members ...string) (int64, error)
	ZCard(ctx context.Context, key string) (int64, error)

	Close() error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Redis.Addr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	c := &client{redisClient: redisClient}
	if err := c.Ping(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *client) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}

func (c *client) ZAdd(ctx context.Context, key string, z redis.Z) error {
	return c.redisClient.ZAdd(ctx, key, z).Err()
}

func (c *client) ZRangeByScore(ctx context.Context, key string, min, max string, limit int) ([]string, error) {
	return c.redisClient.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min:   min,
		Max:   max,
		Count: int64(limit),
	}).Result()
}

func (c *client) ZRem(ctx context.Context, key string, members ...string) (int64, error) {
	args := make([]any, 0, len(members))
	for _, m := range members {
		args = append(args, m)
	}

	return c.redisClient.ZRem(ctx, key, args...).Result()
}

func (c *client) ZCard(ctx context.Context, key string) (int64, error) {
	return c.redisClient.ZCard(ctx, key).Result()
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
