// Command gate runs the location permission gate on a terminal device.
//
//	gate         launch flow: startup check, then the gate if needed
//	gate reset   forget that the gate was shown
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"afrimart/config"
	"afrimart/internal/delivery"
	"afrimart/internal/delivery/terminal"
	"afrimart/internal/domain/constants"
	"afrimart/internal/infra/device"
	"afrimart/internal/infra/geocode"
	"afrimart/internal/infra/geoip"
	logs "afrimart/internal/infra/log"
	"afrimart/internal/infra/pubsub"
	"afrimart/internal/infra/redis"
	"afrimart/internal/infra/store"
	"afrimart/internal/usecase"
	"afrimart/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gate: %+v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	// Prompts own stdout.
	cfg.Env.Log.Output = "stderr"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args) > 0 {
		switch args[0] {
		case "reset":
			return reset(ctx, cfg)
		default:
			return errors.Errorf("unknown command %q", args[0])
		}
	}

	var runner delivery.Delivery
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		injectInfra(cfg),
		store.Module(cfg),
		injectDevice(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if stopErr := app.Stop(context.Background()); stopErr != nil {
			slog.Error("Failed to stop gracefully", slog.Any("error", stopErr))
		}
	}()

	return runner.Serve(ctx)
}

// reset only touches the device state file, so it runs without the backend.
func reset(ctx context.Context, cfg *config.Config) error {
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	state, err := device.NewStateFile(cfg)
	if err != nil {
		return err
	}

	if err := impl.NewStartupService(device.AsFlagStore(state), nil, logger).ResetGate(ctx); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "The location gate will be shown on next launch.")

	return nil
}

func injectInfra(cfg *config.Config) fx.Option {
	opts := []fx.Option{fx.Provide(logs.New)}
	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		opts = append(opts, fx.Provide(redis.NewClient, redis.AsCmdable))
	}

	return fx.Options(opts...)
}

func injectDevice(cfg *config.Config) fx.Option {
	// One buffered reader is shared by the consent prompt and the action prompt.
	term := device.Terminal{In: bufio.NewReader(os.Stdin), Out: os.Stdout}

	coordinates := fx.Provide(device.NewStaticCoordinateProvider)
	if cfg.Device == nil || cfg.Device.Provider != constants.CoordinateProviderStatic {
		coordinates = fx.Provide(geoip.NewCoordinateProvider)
	}

	return fx.Options(
		fx.Supply(term),
		coordinates,
		fx.Provide(
			device.NewStateFile,
			device.AsFlagStore,
			device.NewPromptPermissionService,
			device.AsPermissionService,
			device.NewSignalForegroundNotifier,
			device.AsForegroundNotifier,
			func(n *device.SignalForegroundNotifier) terminal.Resumer { return n },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewReverseGeocoder,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewStartupService,
			impl.NewGateService,
			terminal.NewRecorder,
			func(r *terminal.Recorder) usecase.CoordinateListener { return r.Listener() },
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			terminal.NewRunner,
		),
	)
}
