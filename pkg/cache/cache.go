package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/LuiSauter/data-mart/config"
)

// Client wraps the Redis connection used as a report cache.
// The cache is optional: callers hold a nil *Client when Redis is
// unavailable and every method is nil-safe.
type Client struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient connects to Redis and runs a ping health check.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	ttl := time.Duration(cfg.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &Client{rdb: rdb, ttl: ttl, logger: logger}, nil
}

const reportPrefix = "report:"

// GetReport returns the cached JSON payload for a report key, or "" on miss.
func (c *Client) GetReport(ctx context.Context, key string) string {
	if c == nil {
		return ""
	}
	val, err := c.rdb.Get(ctx, reportPrefix+key).Result()
	if err != nil {
		if err != goredis.Nil {
			c.logger.Warn("report cache read failed", zap.Error(err))
		}
		return ""
	}
	return val
}

// SetReport stores a report JSON payload under the configured TTL.
func (c *Client) SetReport(ctx context.Context, key, payload string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, reportPrefix+key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.Error(err))
	}
}

// InvalidateReports drops every cached report. Called after any write that
// changes facts or dimensions, so reports never serve stale aggregates.
func (c *Client) InvalidateReports(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, reportPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("report cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("report cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
