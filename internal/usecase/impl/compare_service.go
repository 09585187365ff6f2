package impl

import (
	"context"
	"slices"
	"strings"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/repository"
	"afrimart/internal/usecase"

	"github.com/pkg/errors"
)

// compareService keeps the comparison selection behind a repository instead of
// process-wide state, so every caller works on the selection of the user it names.
type compareService struct {
	compareRepo repository.CompareRepository
	maxItems    int
}

// NewCompareService creates a new compare service instance
func NewCompareService(compareRepo repository.CompareRepository, cfg *config.Config) usecase.CompareUsecase {
	maxItems := 4
	if cfg.Compare != nil && cfg.Compare.MaxItems > 0 {
		maxItems = cfg.Compare.MaxItems
	}

	return &compareService{
		compareRepo: compareRepo,
		maxItems:    maxItems,
	}
}

func (s *compareService) List(ctx context.Context, userID string) (*entity.CompareSelection, error) {
	if userID == "" {
		return nil, domainerrors.ErrMissingUserIdentity
	}

	selection, err := s.compareRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get compare selection")
	}

	return selection, nil
}

// Add appends productID to the selection. Adding a product twice is a no-op.
func (s *compareService) Add(ctx context.Context, userID, productID string) (*entity.CompareSelection, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domainerrors.ErrInvalidProductID
	}

	selection, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if slices.Contains(selection.ProductIDs, productID) {
		return selection, nil
	}

	if len(selection.ProductIDs) >= s.maxItems {
		return nil, domainerrors.ErrCompareLimitReached
	}

	selection.ProductIDs = append(selection.ProductIDs, productID)
	selection.UpdatedAt = time.Now()

	if err := s.compareRepo.Save(ctx, selection); err != nil {
		return nil, errors.Wrap(err, "failed to save compare selection")
	}

	return selection, nil
}

func (s *compareService) Remove(ctx context.Context, userID, productID string) (*entity.CompareSelection, error) {
	selection, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := slices.Index(selection.ProductIDs, productID)
	if idx < 0 {
		return selection, nil
	}

	selection.ProductIDs = slices.Delete(selection.ProductIDs, idx, idx+1)
	selection.UpdatedAt = time.Now()

	if err := s.compareRepo.Save(ctx, selection); err != nil {
		return nil, errors.Wrap(err, "failed to save compare selection")
	}

	return selection, nil
}

func (s *compareService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return domainerrors.ErrMissingUserIdentity
	}

	return errors.Wrap(s.compareRepo.Delete(ctx, userID), "failed to clear compare selection")
}
