// Package terminal runs the location permission gate on a text console.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"afrimart/config"
	"afrimart/internal/delivery"
	"afrimart/internal/domain/entity"
	"afrimart/internal/infra/device"
	"afrimart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultFetchTimeout = 15 * time.Second

// Resumer delivers a foreground event, used when the settings surface closes.
type Resumer interface {
	Resume()
}

// RunnerParams holds dependencies for the Runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Terminal device.Terminal
	Gate     usecase.GateUsecase
	Startup  usecase.StartupUsecase
	Recorder *Recorder
	Resumer  Resumer
}

// Runner is the launch flow of the device: startup check, then the gate
// until the user continues.
type Runner struct {
	gate         usecase.GateUsecase
	startup      usecase.StartupUsecase
	recorder     *Recorder
	resumer      Resumer
	in           *bufio.Reader
	out          io.Writer
	logger       *slog.Logger
	fetchTimeout time.Duration
}

func NewRunner(params RunnerParams) delivery.Delivery {
	fetchTimeout := defaultFetchTimeout
	if params.Config.Device != nil && params.Config.Device.FetchTimeout > 0 {
		fetchTimeout = params.Config.Device.FetchTimeout
	}

	return &Runner{
		gate:         params.Gate,
		startup:      params.Startup,
		recorder:     params.Recorder,
		resumer:      params.Resumer,
		in:           bufio.NewReader(params.Terminal.In),
		out:          params.Terminal.Out,
		logger:       params.Logger,
		fetchTimeout: fetchTimeout,
	}
}

// Serve returns once the gate was closed or was not needed.
func (r *Runner) Serve(ctx context.Context) error {
	result := r.startup.Startup(ctx, r.recorder.UserID())
	if !result.ShowGate {
		r.printDisplay(result.Display)

		return nil
	}

	step := r.timed(ctx, r.gate.Open)
	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		r.printStep(step)

		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "failed to read action")
		}
		action := strings.ToLower(strings.TrimSpace(line))
		if errors.Is(err, io.EOF) && action == "" {
			action = "c"
		}

		switch action {
		case "a", "allow":
			step = r.timed(ctx, r.gate.Allow)
		case "r", "refresh":
			step = r.timed(ctx, r.gate.Refresh)
		case "s", "settings":
			if err := r.gate.OpenSettings(ctx); err != nil {
				r.logger.Warn("Settings surface failed", slog.Any("error", err))
			}
			r.resumer.Resume()
			step = r.gate.Step()
		case "c", "continue":
			r.printOutcome(r.gate.Continue(ctx))

			return nil
		default:
			fmt.Fprintf(r.out, "Unknown action %q\n", action)
		}
	}
}

func (r *Runner) timed(ctx context.Context, action func(context.Context) entity.GateStep) entity.GateStep {
	actionCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	return action(actionCtx)
}

func (r *Runner) printStep(step entity.GateStep) {
	switch step {
	case entity.GateStepGranted:
		if coord := r.gate.Coordinate(); coord != nil {
			fmt.Fprintf(r.out, "Location: %s\n", r.label(coord))
		} else {
			fmt.Fprintln(r.out, "Location access is on.")
		}
		fmt.Fprint(r.out, "[r] Refresh  [c] Continue > ")
	case entity.GateStepDenied:
		fmt.Fprintln(r.out, "Location access is off. Nearby sellers and delivery estimates need it.")
		fmt.Fprint(r.out, "[s] Open settings  [c] Continue without location > ")
	default:
		fmt.Fprintln(r.out, "afrimart uses your location to show sellers and delivery options near you.")
		fmt.Fprint(r.out, "[a] Allow  [c] Continue without location > ")
	}
}

func (r *Runner) printOutcome(outcome entity.GateOutcome) {
	if outcome.Coordinate == nil {
		r.printDisplay(outcome.Display)

		return
	}

	fmt.Fprintf(r.out, "Location: %s\n", r.label(outcome.Coordinate))
}

func (r *Runner) printDisplay(display entity.LocationDisplay) {
	fmt.Fprintf(r.out, "Location: %s\n", display.Label)
}

// label prefers the outcome of the last save, then the raw coordinate.
func (r *Runner) label(coord *entity.Coordinate) string {
	if display, ok := r.recorder.Display(); ok && display.Label != "" {
		return display.Label
	}

	return fmt.Sprintf("%.5f, %.5f", coord.Latitude, coord.Longitude)
}
