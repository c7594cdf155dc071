package database

import (
	"github.com/HackerKing5128/voicecart/internal/config"
	"github.com/go-redis/redis"
)

// NewRedis builds a client from config. Returns nil when no address is
// configured, which disables event publishing downstream.
func NewRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
