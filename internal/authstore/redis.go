package authstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fairsplit-admin/internal/config"
)

// keyPrefix namespaces the session keys on a shared redis instance.
const keyPrefix = "fairsplit:admin:"

// RedisKV is a redis-backed KV binding for consoles that share a session
// across machines.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to redis and verifies the connection.
func NewRedisKV(cfg *config.RedisConfig) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisKV{client: client}, nil
}

// NewRedisKVFromClient wraps an existing client; tests use this with miniredis.
func NewRedisKVFromClient(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Close closes the redis connection.
func (r *RedisKV) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// Get retrieves a value; an absent key reads as empty.
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

// Set stores a value without expiry; sessions end by explicit logout or a 401.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

// Remove deletes a key.
func (r *RedisKV) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, keyPrefix+key).Err()
}
