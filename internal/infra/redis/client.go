// Package redis provides the Redis client shared by the redirect state store.
package redis

import (
	"context"
	"log/slog"

	"firelink/config"
	"firelink/internal/domain/lifecycle"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the parameters required for the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and verifies the connection on start.
func New(params Params) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis state driver")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
