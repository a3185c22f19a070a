package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis. Accepts either a plain host:port address or
// a redis:// / rediss:// URL.
func InitRedis(cfg *Config) (*redis.Client, error) {
	val := cfg.RedisAddr

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
