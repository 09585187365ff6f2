package usecase

import (
	"context"

	"afrimart/internal/domain/entity"
)

// StartupUsecase runs on the device at app launch.
type StartupUsecase interface {
	// Startup decides whether the gate must be shown and what to display otherwise.
	// An empty userID means nobody is signed in.
	Startup(ctx context.Context, userID string) entity.StartupResult

	// MarkGateSeen records that the gate was shown and dismissed.
	MarkGateSeen(ctx context.Context) error

	// ResetGate clears the "gate seen" flag so the next launch shows the gate again.
	ResetGate(ctx context.Context) error
}
