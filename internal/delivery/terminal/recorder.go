package terminal

import (
	"context"
	"log/slog"
	"sync"

	"afrimart/config"
	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/entity"
	"afrimart/internal/usecase"

	"go.uber.org/fx"
)

// RecorderParams holds dependencies for the Recorder, injected by Fx.
type RecorderParams struct {
	fx.In

	Config    *config.Config
	Locations usecase.LocationUsecase
	Logger    *slog.Logger
}

// Recorder persists every coordinate the gate emits for the signed-in user
// and keeps the label derived from the last save.
type Recorder struct {
	userID    string
	locations usecase.LocationUsecase
	logger    *slog.Logger

	mu      sync.Mutex
	display *entity.LocationDisplay
}

func NewRecorder(params RecorderParams) *Recorder {
	r := &Recorder{
		locations: params.Locations,
		logger:    params.Logger,
	}
	if params.Config.Device != nil {
		r.userID = params.Config.Device.UserID
	}

	return r
}

// Listener exposes Record as the gate's coordinate listener.
func (r *Recorder) Listener() usecase.CoordinateListener {
	return r.Record
}

// Record saves coord. Signed out, the coordinate is only kept in memory by the gate.
// A failed save replaces the label with "No location".
func (r *Recorder) Record(ctx context.Context, coord entity.Coordinate) {
	if r.userID == "" {
		return
	}

	saved, err := r.locations.SaveLocation(ctx, r.userID, coord)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Location was not saved", slog.Any("error", err))

		display := entity.NoLocationDisplay()
		r.mu.Lock()
		r.display = &display
		r.mu.Unlock()

		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	display := r.locations.DeriveDisplay(saved.Address, r.display)
	r.display = &display
}

// Display returns the label of the last save attempt, if any.
func (r *Recorder) Display() (entity.LocationDisplay, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.display == nil {
		return entity.LocationDisplay{}, false
	}

	return *r.display, true
}

// UserID is the signed-in user, "" when signed out.
func (r *Recorder) UserID() string {
	return r.userID
}
