package cache

import (
	"context"
	"fmt"
	"time"

	"field_estimator/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when no redis host is configured; callers then
// run without the pricing cache.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr() == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr(), err)
	}
	return client, nil
}
