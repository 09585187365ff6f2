package repository

import (
	"context"

	"afrimart/internal/domain/entity"
)

// CompareRepository persists the per-user product comparison selection.
type CompareRepository interface {
	// Get returns the user's selection; an empty selection is returned when none is stored.
	Get(ctx context.Context, userID string) (*entity.CompareSelection, error)

	// Save replaces the user's selection.
	Save(ctx context.Context, selection *entity.CompareSelection) error

	// Delete removes the user's selection.
	Delete(ctx context.Context, userID string) error
}
