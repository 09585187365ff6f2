package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"afrimart/config"
	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"
	"afrimart/internal/usecase"

	"go.uber.org/fx"
)

const defaultRecheckTimeout = 15 * time.Second

// GateParams holds dependencies for the permission gate, injected by Fx.
type GateParams struct {
	fx.In

	Permissions service.PermissionService
	Coordinates service.CoordinateProvider
	Foreground  service.ForegroundNotifier
	Startup     usecase.StartupUsecase
	Listener    usecase.CoordinateListener `optional:"true"`
	Config      *config.Config             `optional:"true"`
	Logger      *slog.Logger
}

// gateService implements the GateUsecase interface.
//
// Step, coordinate and visibility are shared between user actions and the
// foreground recheck, which runs on the notifier's goroutine. Writes are last
// write wins; the mutex only keeps each write whole.
type gateService struct {
	permissions service.PermissionService
	coordinates service.CoordinateProvider
	foreground  service.ForegroundNotifier
	startup     usecase.StartupUsecase
	listener    usecase.CoordinateListener
	logger      *slog.Logger

	recheckTimeout time.Duration

	mu           sync.Mutex
	step         entity.GateStep
	coordinate   *entity.Coordinate
	visible      bool
	subscription service.Subscription
}

// NewGateService is the constructor for gateService.
func NewGateService(params GateParams) usecase.GateUsecase {
	recheckTimeout := defaultRecheckTimeout
	if params.Config != nil && params.Config.Device != nil && params.Config.Device.FetchTimeout > 0 {
		recheckTimeout = params.Config.Device.FetchTimeout
	}

	return &gateService{
		permissions:    params.Permissions,
		coordinates:    params.Coordinates,
		foreground:     params.Foreground,
		startup:        params.Startup,
		listener:       params.Listener,
		logger:         params.Logger,
		recheckTimeout: recheckTimeout,
		step:           entity.GateStepAsk,
	}
}

func (g *gateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Open shows the gate and resolves its step from the current OS permission.
// The permission is queried every time because it may have been changed in
// the system settings while the app was in the background.
func (g *gateService) Open(ctx context.Context) entity.GateStep {
	g.mu.Lock()
	if !g.visible {
		g.visible = true
		// Keeps request values but not the caller's deadline; each recheck gets its own.
		baseCtx := context.WithoutCancel(ctx)
		g.subscription = g.foreground.Subscribe(func() {
			recheckCtx, cancel := context.WithTimeout(baseCtx, g.recheckTimeout)
			defer cancel()

			g.recheck(recheckCtx)
		})
	}
	g.mu.Unlock()

	return g.resolve(ctx)
}

// recheck re-runs the open query after the app returned to the foreground.
func (g *gateService) recheck(ctx context.Context) {
	if !g.Visible() {
		return
	}

	step := g.resolve(ctx)
	g.log(ctx).Debug("Location gate rechecked on foreground", slog.String("step", step.String()))
}

func (g *gateService) resolve(ctx context.Context) entity.GateStep {
	state, err := g.permissions.Check(ctx)
	if err != nil {
		g.log(ctx).Warn("Location permission query failed, treating as denied", slog.Any("error", err))
		state = entity.PermissionDenied
	}

	step := entity.StepForPermission(state)

	var captured *entity.Coordinate
	if step == entity.GateStepGranted && g.Coordinate() == nil {
		// Already granted but nothing captured this session: take the first fix.
		// A failure here keeps the granted step, same as a refresh.
		coord, fetchErr := g.coordinates.CurrentPosition(ctx, entity.AccuracyBalanced)
		if fetchErr != nil {
			g.log(ctx).Info("Initial location fix failed", slog.Any("error", fetchErr))
		} else if entity.IsValidCoords(coord) {
			captured = coord
		}
	}

	g.mu.Lock()
	if !g.visible {
		step = g.step
		g.mu.Unlock()

		return step
	}
	g.step = step
	if captured != nil {
		g.coordinate = captured
	}
	g.mu.Unlock()

	if captured != nil {
		g.emit(ctx, *captured)
	}

	return step
}

// Allow requests permission and captures the first fix.
func (g *gateService) Allow(ctx context.Context) entity.GateStep {
	if current := g.Step(); current != entity.GateStepAsk {
		return current
	}

	state, err := g.permissions.Request(ctx)
	if err != nil {
		g.log(ctx).Warn("Location permission request failed, treating as denied", slog.Any("error", err))
		state = entity.PermissionDenied
	}

	if state != entity.PermissionGranted {
		g.setStep(entity.GateStepDenied)

		return entity.GateStepDenied
	}

	coord, err := g.coordinates.CurrentPosition(ctx, entity.AccuracyBalanced)
	if err != nil || !entity.IsValidCoords(coord) {
		g.log(ctx).Info("Location fix failed after permission was granted", slog.Any("error", err))
		g.setStep(entity.GateStepDenied)

		return entity.GateStepDenied
	}

	g.mu.Lock()
	g.step = entity.GateStepGranted
	g.coordinate = coord
	g.mu.Unlock()

	g.emit(ctx, *coord)

	return entity.GateStepGranted
}

// Refresh re-captures the coordinate. A failed fix is not reported and the
// previously captured coordinate stays in place.
func (g *gateService) Refresh(ctx context.Context) entity.GateStep {
	if current := g.Step(); current != entity.GateStepGranted {
		return current
	}

	coord, err := g.coordinates.CurrentPosition(ctx, entity.AccuracyBalanced)
	if err != nil || !entity.IsValidCoords(coord) {
		g.log(ctx).Info("Location refresh failed, keeping last coordinate", slog.Any("error", err))

		return entity.GateStepGranted
	}

	g.mu.Lock()
	g.coordinate = coord
	g.mu.Unlock()

	g.emit(ctx, *coord)

	return entity.GateStepGranted
}

// OpenSettings hands over to the system settings. The step is re-evaluated by
// the foreground recheck once the user comes back.
func (g *gateService) OpenSettings(ctx context.Context) error {
	if g.Step() != entity.GateStepDenied {
		return nil
	}

	return g.permissions.OpenSettings(ctx)
}

// Continue closes the gate without touching the permission.
func (g *gateService) Continue(ctx context.Context) entity.GateOutcome {
	g.mu.Lock()
	g.visible = false
	sub := g.subscription
	g.subscription = nil
	var coord *entity.Coordinate
	if g.coordinate != nil {
		c := *g.coordinate
		coord = &c
	}
	g.mu.Unlock()

	if sub != nil {
		sub.Close()
	}

	if err := g.startup.MarkGateSeen(ctx); err != nil {
		g.log(ctx).Warn("Failed to persist gate seen flag", slog.Any("error", err))
	}

	if coord == nil {
		return entity.GateOutcome{Display: entity.NoLocationDisplay()}
	}

	return entity.GateOutcome{
		Coordinate: coord,
		Display:    entity.LocationDisplay{Status: entity.GateStepGranted},
	}
}

// Step returns the current step.
func (g *gateService) Step() entity.GateStep {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.step
}

// Coordinate returns a copy of the last captured coordinate.
func (g *gateService) Coordinate() *entity.Coordinate {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.coordinate == nil {
		return nil
	}
	c := *g.coordinate

	return &c
}

// Visible reports whether the gate is shown.
func (g *gateService) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.visible
}

func (g *gateService) setStep(step entity.GateStep) {
	g.mu.Lock()
	g.step = step
	g.mu.Unlock()
}

func (g *gateService) emit(ctx context.Context, coord entity.Coordinate) {
	if g.listener != nil {
		g.listener(ctx, coord)
	}
}
