package main

import (
	"context"
	"log/slog"
	"os"

	"afrimart/config"
	"afrimart/internal/delivery"
	"afrimart/internal/delivery/worker"
	"afrimart/internal/delivery/worker/handler"
	"afrimart/internal/infra/geocode"
	logs "afrimart/internal/infra/log"
	"afrimart/internal/infra/redis"
	"afrimart/internal/infra/store"
	"afrimart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(cfg),
		store.Module(cfg),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	opts := []fx.Option{
		fx.Provide(
			logs.New,
			context.Background,
		),
	}
	// The worker only needs Redis for the geocode cache.
	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		opts = append(opts, fx.Provide(redis.NewClient, redis.AsCmdable))
	}

	return fx.Options(opts...)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewReverseGeocoder,
		),
	)
}

// The worker writes backfilled addresses only and never republishes.
func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
