package config

import (
	"context"
	"time"

	"foodgram/internal/utils"
	"foodgram/internal/utils/cache"
	"foodgram/internal/utils/logger"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "foodgram:"

// ConnectCache returns a Redis-backed cache, or a no-op cache when REDIS_ADDR
// is unset or the server does not answer.
func ConnectCache() cache.Cache {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		logger.Warn().Msg("REDIS_ADDR not set, caching and token revocation disabled")
		return cache.NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       utils.GetConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, caching and token revocation disabled")
		_ = client.Close()
		return cache.NewNoopCache()
	}

	logger.Info().Str("addr", addr).Msg("redis connected")
	return cache.NewRedisCache(client, cachePrefix)
}
