package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"
	mockSvc "afrimart/internal/mocks/service"
	mockUsecase "afrimart/internal/mocks/usecase"
	"afrimart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gateFixture struct {
	gate         usecase.GateUsecase
	permissions  *mockSvc.MockPermissionService
	coordinates  *mockSvc.MockCoordinateProvider
	foreground   *mockSvc.MockForegroundNotifier
	subscription *mockSvc.MockSubscription
	startup      *mockUsecase.MockStartupUsecase
	emitted      []entity.Coordinate
	onForeground func()
}

func newGateFixture(t *testing.T) *gateFixture {
	f := &gateFixture{
		permissions:  mockSvc.NewMockPermissionService(t),
		coordinates:  mockSvc.NewMockCoordinateProvider(t),
		foreground:   mockSvc.NewMockForegroundNotifier(t),
		subscription: mockSvc.NewMockSubscription(t),
		startup:      mockUsecase.NewMockStartupUsecase(t),
	}

	f.gate = NewGateService(GateParams{
		Permissions: f.permissions,
		Coordinates: f.coordinates,
		Foreground:  f.foreground,
		Startup:     f.startup,
		Listener: func(_ context.Context, coord entity.Coordinate) {
			f.emitted = append(f.emitted, coord)
		},
		Logger: newDiscardLogger(),
	})

	return f
}

// expectSubscribe captures the foreground callback so tests can fire it.
func (f *gateFixture) expectSubscribe() {
	f.foreground.EXPECT().Subscribe(mock.Anything).
		RunAndReturn(func(fn func()) service.Subscription {
			f.onForeground = fn

			return f.subscription
		}).Once()
}

func sampleCoordinate() *entity.Coordinate {
	return &entity.Coordinate{Latitude: 45.5017, Longitude: -73.5673, Accuracy: ptr(12.0), Timestamp: 1700000000000}
}

func TestGateService_Open(t *testing.T) {
	t.Run("granted without coordinate fetches and emits exactly once", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()
		coord := sampleCoordinate()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(coord, nil).Once()

		step := f.gate.Open(ctx)

		assert.Equal(t, entity.GateStepGranted, step)
		require.Len(t, f.emitted, 1)
		assert.Equal(t, *coord, f.emitted[0])
		assert.Equal(t, coord, f.gate.Coordinate())
		assert.True(t, f.gate.Visible())
	})

	t.Run("granted but fetch fails stays granted", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(nil, errors.New("timeout")).Once()

		assert.Equal(t, entity.GateStepGranted, f.gate.Open(ctx))
		assert.Empty(t, f.emitted)
		assert.Nil(t, f.gate.Coordinate())
	})

	t.Run("denied never calls the provider", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionDenied, nil).Once()

		assert.Equal(t, entity.GateStepDenied, f.gate.Open(ctx))
		assert.Empty(t, f.emitted)
		f.coordinates.AssertNotCalled(t, "CurrentPosition", mock.Anything, mock.Anything)
	})

	t.Run("undetermined shows ask", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionUnknown, nil).Once()

		assert.Equal(t, entity.GateStepAsk, f.gate.Open(ctx))
	})

	t.Run("query error is treated as denied", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionUnknown, errors.New("unavailable")).Once()

		assert.Equal(t, entity.GateStepDenied, f.gate.Open(ctx))
	})
}

func TestGateService_Allow(t *testing.T) {
	tests := []struct {
		name        string
		requested   entity.PermissionState
		requestErr  error
		fetched     *entity.Coordinate
		fetchErr    error
		expectFetch bool
		wantStep    entity.GateStep
		wantEmitted int
	}{
		{
			name:        "granted and fix succeeds",
			requested:   entity.PermissionGranted,
			fetched:     sampleCoordinate(),
			expectFetch: true,
			wantStep:    entity.GateStepGranted,
			wantEmitted: 1,
		},
		{
			name:        "granted but fix fails",
			requested:   entity.PermissionGranted,
			fetchErr:    errors.New("no fix"),
			expectFetch: true,
			wantStep:    entity.GateStepDenied,
		},
		{
			name:      "user refuses",
			requested: entity.PermissionDenied,
			wantStep:  entity.GateStepDenied,
		},
		{
			name:       "request errors",
			requested:  entity.PermissionUnknown,
			requestErr: errors.New("dialog dismissed"),
			wantStep:   entity.GateStepDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGateFixture(t)
			ctx := context.Background()

			f.expectSubscribe()
			f.permissions.EXPECT().Check(ctx).Return(entity.PermissionUnknown, nil).Once()
			f.permissions.EXPECT().Request(ctx).Return(tt.requested, tt.requestErr).Once()
			if tt.expectFetch {
				f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(tt.fetched, tt.fetchErr).Once()
			}

			require.Equal(t, entity.GateStepAsk, f.gate.Open(ctx))
			step := f.gate.Allow(ctx)

			assert.Equal(t, tt.wantStep, step)
			assert.Equal(t, tt.wantStep, f.gate.Step())
			assert.Len(t, f.emitted, tt.wantEmitted)
		})
	}
}

func TestGateService_Allow_IgnoredOutsideAsk(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	f.expectSubscribe()
	f.permissions.EXPECT().Check(ctx).Return(entity.PermissionDenied, nil).Once()

	f.gate.Open(ctx)

	assert.Equal(t, entity.GateStepDenied, f.gate.Allow(ctx))
	f.permissions.AssertNotCalled(t, "Request", mock.Anything)
}

func TestGateService_Refresh(t *testing.T) {
	t.Run("failure keeps previous coordinate and stays granted", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()
		first := sampleCoordinate()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(first, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(nil, errors.New("lost signal")).Once()

		f.gate.Open(ctx)
		step := f.gate.Refresh(ctx)

		assert.Equal(t, entity.GateStepGranted, step)
		assert.Equal(t, first, f.gate.Coordinate())
		assert.Len(t, f.emitted, 1)
	})

	t.Run("success replaces coordinate and emits", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()
		first := sampleCoordinate()
		second := &entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792, Timestamp: 1700000100000}

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(first, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(second, nil).Once()

		f.gate.Open(ctx)
		f.gate.Refresh(ctx)

		assert.Equal(t, second, f.gate.Coordinate())
		require.Len(t, f.emitted, 2)
		assert.Equal(t, *second, f.emitted[1])
	})

	t.Run("ignored outside granted", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionUnknown, nil).Once()

		f.gate.Open(ctx)

		assert.Equal(t, entity.GateStepAsk, f.gate.Refresh(ctx))
	})
}

func TestGateService_OpenSettings(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	f.expectSubscribe()
	f.permissions.EXPECT().Check(ctx).Return(entity.PermissionDenied, nil).Once()
	f.permissions.EXPECT().OpenSettings(ctx).Return(nil).Once()

	f.gate.Open(ctx)

	require.NoError(t, f.gate.OpenSettings(ctx))
	assert.Equal(t, entity.GateStepDenied, f.gate.Step())
}

func TestGateService_ForegroundRecheck(t *testing.T) {
	t.Run("permission granted in settings moves denied to granted", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()
		coord := sampleCoordinate()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(mock.Anything).Return(entity.PermissionDenied, nil).Once()
		f.permissions.EXPECT().Check(mock.Anything).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(mock.Anything, entity.AccuracyBalanced).Return(coord, nil).Once()

		require.Equal(t, entity.GateStepDenied, f.gate.Open(ctx))
		require.NotNil(t, f.onForeground)

		f.onForeground()

		assert.Equal(t, entity.GateStepGranted, f.gate.Step())
		assert.Len(t, f.emitted, 1)
	})

	t.Run("recheck runs under its own deadline", func(t *testing.T) {
		f := newGateFixture(t)
		openCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		coord := sampleCoordinate()

		var recheckDeadline time.Time
		f.expectSubscribe()
		f.permissions.EXPECT().Check(mock.Anything).Return(entity.PermissionDenied, nil).Once()
		f.permissions.EXPECT().Check(mock.Anything).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(mock.Anything, entity.AccuracyBalanced).
			RunAndReturn(func(ctx context.Context, _ entity.Accuracy) (*entity.Coordinate, error) {
				deadline, ok := ctx.Deadline()
				require.True(t, ok)
				recheckDeadline = deadline

				return coord, ctx.Err()
			}).Once()

		f.gate.Open(openCtx)
		cancel()
		f.onForeground()

		assert.Equal(t, entity.GateStepGranted, f.gate.Step())
		assert.WithinDuration(t, time.Now().Add(defaultRecheckTimeout), recheckDeadline, 5*time.Second)
	})

	t.Run("no recheck after the gate closed", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(mock.Anything).Return(entity.PermissionDenied, nil).Once()
		f.subscription.EXPECT().Close().Return().Once()
		f.startup.EXPECT().MarkGateSeen(ctx).Return(nil).Once()

		f.gate.Open(ctx)
		f.gate.Continue(ctx)
		f.onForeground()

		f.permissions.AssertNumberOfCalls(t, "Check", 1)
	})
}

func TestGateService_Continue(t *testing.T) {
	t.Run("without coordinate shows no location", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionDenied, nil).Once()
		f.subscription.EXPECT().Close().Return().Once()
		f.startup.EXPECT().MarkGateSeen(ctx).Return(nil).Once()

		f.gate.Open(ctx)
		outcome := f.gate.Continue(ctx)

		assert.Nil(t, outcome.Coordinate)
		assert.Equal(t, entity.NoLocationDisplay(), outcome.Display)
		assert.False(t, f.gate.Visible())
	})

	t.Run("with coordinate hands it to the caller", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()
		coord := sampleCoordinate()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionGranted, nil).Once()
		f.coordinates.EXPECT().CurrentPosition(ctx, entity.AccuracyBalanced).Return(coord, nil).Once()
		f.subscription.EXPECT().Close().Return().Once()
		f.startup.EXPECT().MarkGateSeen(ctx).Return(nil).Once()

		f.gate.Open(ctx)
		outcome := f.gate.Continue(ctx)

		assert.Equal(t, coord, outcome.Coordinate)
		assert.Equal(t, entity.GateStepGranted, outcome.Display.Status)
	})

	t.Run("flag write failure does not block closing", func(t *testing.T) {
		f := newGateFixture(t)
		ctx := context.Background()

		f.expectSubscribe()
		f.permissions.EXPECT().Check(ctx).Return(entity.PermissionUnknown, nil).Once()
		f.subscription.EXPECT().Close().Return().Once()
		f.startup.EXPECT().MarkGateSeen(ctx).Return(errors.New("read-only filesystem")).Once()

		f.gate.Open(ctx)
		outcome := f.gate.Continue(ctx)

		assert.Equal(t, entity.NoLocationDisplay(), outcome.Display)
		assert.False(t, f.gate.Visible())
	})
}
