package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	"afrimart/internal/infra/device"
	mockUsecase "afrimart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scriptedGate walks a fixed sequence of steps and records the calls it got.
type scriptedGate struct {
	step       entity.GateStep
	coordinate *entity.Coordinate
	onAllow    entity.GateStep
	afterOpen  entity.GateStep
	calls      []string
	listener   func(ctx context.Context, coord entity.Coordinate)
}

func (g *scriptedGate) Open(context.Context) entity.GateStep {
	g.calls = append(g.calls, "open")

	return g.step
}

func (g *scriptedGate) Allow(ctx context.Context) entity.GateStep {
	g.calls = append(g.calls, "allow")
	g.step = g.onAllow
	if g.step == entity.GateStepGranted {
		g.coordinate = &entity.Coordinate{Latitude: 6.45, Longitude: 3.39, Timestamp: 1}
		if g.listener != nil {
			g.listener(ctx, *g.coordinate)
		}
	}

	return g.step
}

func (g *scriptedGate) Refresh(context.Context) entity.GateStep {
	g.calls = append(g.calls, "refresh")

	return g.step
}

func (g *scriptedGate) OpenSettings(context.Context) error {
	g.calls = append(g.calls, "settings")

	return nil
}

func (g *scriptedGate) Continue(context.Context) entity.GateOutcome {
	g.calls = append(g.calls, "continue")
	if g.coordinate == nil {
		return entity.GateOutcome{Display: entity.NoLocationDisplay()}
	}

	return entity.GateOutcome{Coordinate: g.coordinate, Display: entity.LocationDisplay{Status: entity.GateStepGranted}}
}

func (g *scriptedGate) Step() entity.GateStep          { return g.step }
func (g *scriptedGate) Coordinate() *entity.Coordinate { return g.coordinate }
func (g *scriptedGate) Visible() bool                  { return true }

type resumeFunc func()

func (f resumeFunc) Resume() { f() }

type runnerFixture struct {
	runner    *Runner
	gate      *scriptedGate
	startup   *mockUsecase.MockStartupUsecase
	locations *mockUsecase.MockLocationUsecase
	out       *bytes.Buffer
}

func newRunnerFixture(t *testing.T, input string, userID string) *runnerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Device: &config.DeviceConfig{UserID: userID}}

	f := &runnerFixture{
		gate:      &scriptedGate{step: entity.GateStepAsk},
		startup:   mockUsecase.NewMockStartupUsecase(t),
		locations: mockUsecase.NewMockLocationUsecase(t),
		out:       &bytes.Buffer{},
	}
	recorder := NewRecorder(RecorderParams{Config: cfg, Locations: f.locations, Logger: logger})
	f.gate.listener = recorder.Listener()

	f.runner = NewRunner(RunnerParams{
		Config:   cfg,
		Logger:   logger,
		Terminal: device.Terminal{In: strings.NewReader(input), Out: f.out},
		Gate:     f.gate,
		Startup:  f.startup,
		Recorder: recorder,
		Resumer: resumeFunc(func() {
			f.gate.calls = append(f.gate.calls, "resume")
			f.gate.step = f.gate.afterOpen
		}),
	}).(*Runner)

	return f
}

func TestRunner_SkipsGateWhenSeen(t *testing.T) {
	f := newRunnerFixture(t, "", "user-1")
	f.startup.EXPECT().Startup(mock.Anything, "user-1").Return(entity.StartupResult{
		Display: entity.LocationDisplay{Status: entity.GateStepGranted, Label: "Rue 12, Dakar"},
	})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.Empty(t, f.gate.calls)
	assert.Equal(t, "Location: Rue 12, Dakar\n", f.out.String())
}

func TestRunner_AllowSavesAndShowsLabel(t *testing.T) {
	f := newRunnerFixture(t, "a\nc\n", "user-1")
	f.gate.onAllow = entity.GateStepGranted
	f.startup.EXPECT().Startup(mock.Anything, "user-1").Return(entity.StartupResult{ShowGate: true, Display: entity.NoLocationDisplay()})

	address := &entity.Address{Formatted: "Broad Street, Lagos"}
	f.locations.EXPECT().SaveLocation(mock.Anything, "user-1", mock.Anything).
		Return(&entity.SavedLocation{Address: address}, nil)
	f.locations.EXPECT().DeriveDisplay(address, (*entity.LocationDisplay)(nil)).
		Return(entity.LocationDisplay{Status: entity.GateStepGranted, Label: address.Formatted})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.Equal(t, []string{"open", "allow", "continue"}, f.gate.calls)
	assert.True(t, strings.HasSuffix(f.out.String(), "Location: Broad Street, Lagos\n"), f.out.String())
}

func TestRunner_SaveFailureShowsNoLocation(t *testing.T) {
	f := newRunnerFixture(t, "allow\ncontinue\n", "user-1")
	f.gate.onAllow = entity.GateStepGranted
	f.startup.EXPECT().Startup(mock.Anything, "user-1").Return(entity.StartupResult{ShowGate: true})
	f.locations.EXPECT().SaveLocation(mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("offline"))

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.True(t, strings.HasSuffix(f.out.String(), "Location: No location\n"), f.out.String())
	assert.NotContains(t, f.out.String(), "6.45000")
}

func TestRunner_SignedOutShowsCoordinate(t *testing.T) {
	f := newRunnerFixture(t, "a\nc\n", "")
	f.gate.onAllow = entity.GateStepGranted
	f.startup.EXPECT().Startup(mock.Anything, "").Return(entity.StartupResult{ShowGate: true})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.True(t, strings.HasSuffix(f.out.String(), "Location: 6.45000, 3.39000\n"), f.out.String())
}

func TestRunner_SettingsRechecks(t *testing.T) {
	f := newRunnerFixture(t, "s\nc\n", "")
	f.gate.step = entity.GateStepDenied
	f.gate.afterOpen = entity.GateStepGranted
	f.startup.EXPECT().Startup(mock.Anything, "").Return(entity.StartupResult{ShowGate: true})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.Equal(t, []string{"open", "settings", "resume", "continue"}, f.gate.calls)
	assert.Contains(t, f.out.String(), "Location access is on.")
}

func TestRunner_EOFContinues(t *testing.T) {
	f := newRunnerFixture(t, "", "")
	f.startup.EXPECT().Startup(mock.Anything, "").Return(entity.StartupResult{ShowGate: true})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.Equal(t, []string{"open", "continue"}, f.gate.calls)
	assert.True(t, strings.HasSuffix(f.out.String(), "Location: No location\n"))
}

func TestRunner_UnknownAction(t *testing.T) {
	f := newRunnerFixture(t, "x\nc\n", "")
	f.startup.EXPECT().Startup(mock.Anything, "").Return(entity.StartupResult{ShowGate: true})

	require.NoError(t, f.runner.Serve(context.Background()))

	assert.Contains(t, f.out.String(), `Unknown action "x"`)
}
