// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"nexus/config"
)

var (
	// CacheClient is the snapshot store client. May stay nil when redis is
	// unreachable; callers must treat it as optional.
	CacheClient *redis.Client
	// OTPCacheClient is the dedicated client for OTP codes.
	OTPCacheClient *redis.Client

	cacheProbed bool
	otpProbed   bool
)

// InitCache initializes the snapshot Redis client. Unlike a database, the
// snapshot store is best-effort: on failure the server keeps running with
// in-memory state only.
func InitCache() {
	cacheProbed = true
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis snapshot store unavailable, running in-memory only", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the snapshot client, or nil when redis is absent.
func GetCacheClient() *redis.Client {
	if !cacheProbed {
		InitCache()
	}
	return CacheClient
}

// InitOTPCache initializes the Redis client for OTP storage.
func InitOTPCache() {
	otpProbed = true
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis OTP store unavailable, falling back to in-memory codes", zap.Error(err))
		return
	}
	OTPCacheClient = client
}

// GetOTPCacheClient returns the OTP client, or nil when redis is absent.
func GetOTPCacheClient() *redis.Client {
	if !otpProbed {
		InitOTPCache()
	}
	return OTPCacheClient
}
