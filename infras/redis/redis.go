package redis

import (
	"context"
	"hoteladmin/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Required reports whether any configured component depends on redis.
func Required(cfg *config.Config) bool {
	return cfg.App.Session.Store == config.SessionStoreRedis || cfg.App.RateLimiter.Enable
}

// New creates the primary client. go-redis dials lazily, so the connection is
// only verified when a component actually needs it.
func New(cfg *config.Config) *goRedis.Client {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if !Required(cfg) {
		log.Debug().Msg("Redis not required by configuration, skipping connection check")

		return client
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
