package usecase

import (
	"context"

	"afrimart/internal/domain/entity"
)

// CoordinateListener receives every coordinate the gate emits.
type CoordinateListener func(ctx context.Context, coord entity.Coordinate)

// GateUsecase drives the location permission gate.
type GateUsecase interface {
	// Open shows the gate and resolves its step from the current OS permission.
	Open(ctx context.Context) entity.GateStep

	// Allow requests permission and, when granted, captures the first coordinate.
	Allow(ctx context.Context) entity.GateStep

	// Refresh re-captures the coordinate while granted. Failures keep the previous coordinate.
	Refresh(ctx context.Context) entity.GateStep

	// OpenSettings delegates to the OS settings surface without changing the step.
	OpenSettings(ctx context.Context) error

	// Continue closes the gate and reports what the caller should display.
	Continue(ctx context.Context) entity.GateOutcome

	// Step returns the current step.
	Step() entity.GateStep

	// Coordinate returns the last coordinate captured this session, or nil.
	Coordinate() *entity.Coordinate

	// Visible reports whether the gate is currently shown.
	Visible() bool
}
