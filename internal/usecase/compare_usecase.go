package usecase

import (
	"context"

	"afrimart/internal/domain/entity"
)

// CompareUsecase manages the products a buyer selected for comparison.
type CompareUsecase interface {
	List(ctx context.Context, userID string) (*entity.CompareSelection, error)
	Add(ctx context.Context, userID, productID string) (*entity.CompareSelection, error)
	Remove(ctx context.Context, userID, productID string) (*entity.CompareSelection, error)
	Clear(ctx context.Context, userID string) error
}
