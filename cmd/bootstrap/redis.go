package bootstrap

import (
	"context"
	"log/slog"

	infraredis "court-reservation/internal/infra/redis"
	"court-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is empty; the catalog then reads straight from Postgres.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("redis disabled, catalog cache off")
		return nil, nil
	}

	client, err := infraredis.New(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})

	return client, nil
}
