package main

import (
	"context"
	"log/slog"
	"os"

	"firelink/config"
	"firelink/internal/delivery"
	"firelink/internal/delivery/api"
	"firelink/internal/delivery/api/middleware"
	"firelink/internal/delivery/api/router/handler"
	"firelink/internal/domain/constants"
	"firelink/internal/domain/repository"
	"firelink/internal/domain/service"
	"firelink/internal/infra/auth"
	"firelink/internal/infra/auth/oauth"
	"firelink/internal/infra/identity"
	"firelink/internal/infra/interaction"
	logs "firelink/internal/infra/log"
	"firelink/internal/infra/metrics"
	"firelink/internal/infra/notification"
	"firelink/internal/infra/persistence/memory"
	redisstore "firelink/internal/infra/persistence/redis"
	"firelink/internal/infra/policy"
	"firelink/internal/infra/pubsub"
	"firelink/internal/infra/redis"
	"firelink/internal/infra/secrets"
	"firelink/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStateStore,
		),
	)
}

// newStateStore picks the redirect state driver. Redis survives restarts and is shared between
// replicas; memory is for local development.
func newStateStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.RedirectStateStore, error) {
	ttl := cfg.State.TTL
	if cfg.State.Driver != constants.StateDriverRedis {
		logger.Warn("Using in-memory redirect state; sessions are lost on restart")

		return memory.NewStateStore(ttl), nil
	}

	client, err := redis.New(redis.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	prefix := ""
	if cfg.Redis != nil {
		prefix = cfg.Redis.KeyPrefix
	}

	return redisstore.NewStateStore(client, prefix, ttl), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			secrets.New,
			oauth.NewRegistry,
			identity.New,
			interaction.New,
			func(b *interaction.Broker) service.Prompter { return b },
			func(b *interaction.Broker) service.Navigator { return b },
			func(b *interaction.Broker) handler.FlowBroker { return b },
			notification.NewStoreNotifier,
			policy.NewGmailPolicy,
			newFlowMetrics,
			pubsub.NewLinkEventPublisher,
			auth.NewSessionTokenService,
		),
	)
}

func newFlowMetrics(cfg *config.Config, reg *prometheus.Registry) service.FlowMetrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}

	return metrics.NewFlowMetrics(reg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRedirectState,
			impl.NewProviderSelector,
			impl.NewLinkResolver,
			impl.NewRedirectCompletion,
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLinkHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
