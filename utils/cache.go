package utils

import (
	"context"
	"log"
	"time"

	"concierge/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds in-flight resolution sessions between the
// resolve and confirm phases of a conversation turn.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client used for resolution sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
