package redis

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/config"
	"air-relatorios/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. A disabled config yields a nil
// client, which every method treats as "not available".
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "successfully connected to Redis",
		observability.Field{Key: "addr", Value: cfg.Addr()},
		observability.Field{Key: "db", Value: cfg.DB},
	)

	return Wrap(client, logger), nil
}

// Wrap adopts an existing go-redis client.
func Wrap(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled reports whether the client is usable.
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Ping checks the connection.
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.Ping(ctx).Err()
}

// WindowResult is the state of a sliding window after a hit.
type WindowResult struct {
	Count  int64
	Oldest time.Time
}

// SlidingWindowHit drops members older than window, records now when the
// window holds fewer than limit members, and reports the resulting count.
// The key is a sorted set of request timestamps in milliseconds.
func (c *Client) SlidingWindowHit(ctx context.Context, key string, limit int64, window time.Duration, now time.Time) (WindowResult, bool, error) {
	if !c.IsEnabled() {
		return WindowResult{}, false, fmt.Errorf("Redis client not initialized")
	}
	nowMs := now.UnixMilli()
	startMs := now.Add(-window).UnixMilli()

	if err := c.client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", startMs)).Err(); err != nil {
		return WindowResult{}, false, fmt.Errorf("failed to remove old entries: %w", err)
	}
	count, err := c.client.ZCard(ctx, key).Result()
	if err != nil {
		return WindowResult{}, false, fmt.Errorf("failed to count requests: %w", err)
	}

	if count >= limit {
		res := WindowResult{Count: count, Oldest: now}
		oldest, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			res.Oldest = time.UnixMilli(int64(oldest[0].Score))
		}
		return res, false, nil
	}

	member := fmt.Sprintf("%d-%d", nowMs, count)
	if err := c.client.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return WindowResult{}, false, fmt.Errorf("failed to add request: %w", err)
	}
	if err := c.client.Expire(ctx, key, 2*window).Err(); err != nil {
		c.logger.Warn(ctx, "failed to set expiration on rate limit key",
			observability.Field{Key: "key", Value: key},
			observability.Field{Key: "error", Value: err.Error()},
		)
	}
	return WindowResult{Count: count + 1, Oldest: now}, true, nil
}
