package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Payphone-Digital/transportadora/config"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrDisabled is returned by every operation when Redis is turned off in config
var ErrDisabled = errors.New("redis is disabled")

type Client struct {
	rdb     *redis.Client
	address string
}

// NewClient connects to Redis when enabled. A disabled config yields a
// client whose operations return ErrDisabled.
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.Redis.Enabled {
		logger.GetLogger().Info("Redis disabled, using in-memory cache only")
		return &Client{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolTimeout:  cfg.Redis.PoolTimeout,
	})

	client := &Client{rdb: rdb, address: cfg.RedisAddress()}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		logger.GetLogger().Error("Failed to connect to Redis",
			zap.String("address", client.address),
			zap.Error(err),
		)
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.GetLogger().Info("Successfully connected to Redis",
		zap.String("address", client.address),
		zap.Int("database", cfg.Redis.Database),
	)

	return client, nil
}

func (c *Client) IsEnabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.rdb.Close()
}

// SetJSON stores value encoded as JSON under key for ttl
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache item: %w", err)
	}

	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.GetLogger().Error("Failed to set cache",
			zap.String("key", key),
			zap.Duration("ttl", ttl),
			zap.Error(err),
		)
		return fmt.Errorf("failed to set cache: %w", err)
	}

	logger.GetLogger().Debug("Cache set successfully",
		zap.String("key", key),
		zap.Duration("ttl", ttl),
		zap.Int("data_size", len(data)),
	)

	return nil
}

// GetJSON decodes the value under key into dest. A miss returns false and no error.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.IsEnabled() {
		return false, ErrDisabled
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		logger.GetLogger().Error("Failed to get cache",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.GetLogger().Error("Failed to unmarshal cache item",
			zap.String("key", key),
			zap.Error(err),
		)
		_ = c.Delete(ctx, key)
		return false, nil
	}

	return true, nil
}

// Delete removes cache entries
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.GetLogger().Error("Failed to delete cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete cache: %w", err)
	}

	return nil
}
