package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/pkg/logger"
)

// RedisClient wraps the Redis client with connection lifecycle logging.
type RedisClient struct {
	*redis.Client
	closed bool
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*RedisClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger.WithFields(map[string]interface{}{
		"host": cfg.Redis.Host,
		"port": cfg.Redis.Port,
		"db":   cfg.Redis.DB,
	}).Debug("Creating new Redis client")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		if closeErr := rdb.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close Redis client after connection failure")
		}
		logger.WithError(err).Error("Failed to connect to Redis")
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.WithField("address", cfg.Redis.Address()).Info("Redis client connected successfully")
	return &RedisClient{Client: rdb}, nil
}

// Close closes the Redis connection. Calling it twice is a no-op.
func (r *RedisClient) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.Client.Close(); err != nil {
		logger.WithError(err).Error("Failed to close Redis connection")
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	return nil
}
