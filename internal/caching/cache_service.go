package caching

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key the store writes.
const KeyPrefix = "stonestore:"

// CacheService is a JSON read-through cache for catalog reads.
type CacheService interface {
	// GetJSON decodes the cached value into dest. A miss reports false with no error.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService accepts either host:port or a redis:// URL.
func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(redisOptions(addr, password, db))

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, addr)
	} else {
		log.Printf("Redis connection established")
	}

	return &redisCacheService{client: client}
}

func redisOptions(addr, password string, db int) *redis.Options {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if opts, err := redis.ParseURL(addr); err == nil {
			if password != "" {
				opts.Password = password
			}
			return opts
		}
	}
	return &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
}

func keyFor(key string) string {
	return KeyPrefix + key
}

func (r *redisCacheService) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, keyFor(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyFor(key), data, ttl).Err()
}

func (r *redisCacheService) InvalidateAll(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, KeyPrefix+"*").Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// noopCacheService is used when no Redis address is configured; every read misses.
type noopCacheService struct{}

func NewNoopCacheService() CacheService {
	return noopCacheService{}
}

func (noopCacheService) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (noopCacheService) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (noopCacheService) InvalidateAll(context.Context) error { return nil }

func (noopCacheService) Ping(context.Context) error { return nil }
