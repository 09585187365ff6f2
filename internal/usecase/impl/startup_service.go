package impl

import (
	"context"
	"log/slog"

	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"
	"afrimart/internal/usecase"

	"github.com/pkg/errors"
)

// GateSeenFlagKey is the on-device key recording that the gate was shown once.
const GateSeenFlagKey = "location_gate_seen"

type startupService struct {
	flags     service.FlagStore
	locations usecase.LocationUsecase
	logger    *slog.Logger
}

// NewStartupService is the constructor for startupService.
func NewStartupService(flags service.FlagStore, locations usecase.LocationUsecase, logger *slog.Logger) usecase.StartupUsecase {
	return &startupService{
		flags:     flags,
		locations: locations,
		logger:    logger,
	}
}

func (s *startupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Startup shows the gate on first run even if the user already has a saved
// location; consent is always confirmed once per install.
func (s *startupService) Startup(ctx context.Context, userID string) entity.StartupResult {
	seen, err := s.flags.GetBool(ctx, GateSeenFlagKey)
	if err != nil {
		s.log(ctx).Warn("Failed to read gate seen flag, showing gate", slog.Any("error", err))
		seen = false
	}

	if !seen {
		return entity.StartupResult{ShowGate: true, Display: entity.NoLocationDisplay()}
	}

	return entity.StartupResult{
		ShowGate: false,
		Display:  s.locations.RecordDisplay(ctx, userID),
	}
}

func (s *startupService) MarkGateSeen(ctx context.Context) error {
	return errors.WithStack(s.flags.SetBool(ctx, GateSeenFlagKey, true))
}

func (s *startupService) ResetGate(ctx context.Context) error {
	return errors.WithStack(s.flags.Delete(ctx, GateSeenFlagKey))
}
