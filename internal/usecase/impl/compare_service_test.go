package impl

import (
	"context"
	"errors"
	"testing"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	mockRepo "afrimart/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCompareConfig(maxItems int) *config.Config {
	return &config.Config{Compare: &config.CompareConfig{MaxItems: maxItems}}
}

func TestCompareService_Add(t *testing.T) {
	t.Run("appends a new product", func(t *testing.T) {
		compareRepo := mockRepo.NewMockCompareRepository(t)
		svc := NewCompareService(compareRepo, newTestCompareConfig(4))
		ctx := context.Background()

		compareRepo.EXPECT().Get(ctx, "user-1").Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"p1"}}, nil).Once()
		compareRepo.EXPECT().Save(ctx, mock.MatchedBy(func(s *entity.CompareSelection) bool {
			return assert.ObjectsAreEqual([]string{"p1", "p2"}, s.ProductIDs)
		})).Return(nil).Once()

		selection, err := svc.Add(ctx, "user-1", "p2")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, selection.ProductIDs)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		compareRepo := mockRepo.NewMockCompareRepository(t)
		svc := NewCompareService(compareRepo, newTestCompareConfig(4))
		ctx := context.Background()

		compareRepo.EXPECT().Get(ctx, "user-1").Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"p1"}}, nil).Once()

		selection, err := svc.Add(ctx, "user-1", "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, selection.ProductIDs)
		compareRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("limit reached", func(t *testing.T) {
		compareRepo := mockRepo.NewMockCompareRepository(t)
		svc := NewCompareService(compareRepo, newTestCompareConfig(2))
		ctx := context.Background()

		compareRepo.EXPECT().Get(ctx, "user-1").Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"p1", "p2"}}, nil).Once()

		_, err := svc.Add(ctx, "user-1", "p3")
		require.ErrorIs(t, err, domainerrors.ErrCompareLimitReached)
	})

	t.Run("blank product id", func(t *testing.T) {
		svc := NewCompareService(mockRepo.NewMockCompareRepository(t), newTestCompareConfig(4))

		_, err := svc.Add(context.Background(), "user-1", "  ")
		require.ErrorIs(t, err, domainerrors.ErrInvalidProductID)
	})
}

func TestCompareService_Remove(t *testing.T) {
	compareRepo := mockRepo.NewMockCompareRepository(t)
	svc := NewCompareService(compareRepo, newTestCompareConfig(4))
	ctx := context.Background()

	compareRepo.EXPECT().Get(ctx, "user-1").Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"p1", "p2", "p3"}}, nil).Once()
	compareRepo.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()

	selection, err := svc.Remove(ctx, "user-1", "p2")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, selection.ProductIDs)
}

func TestCompareService_Clear(t *testing.T) {
	compareRepo := mockRepo.NewMockCompareRepository(t)
	svc := NewCompareService(compareRepo, newTestCompareConfig(4))
	ctx := context.Background()

	compareRepo.EXPECT().Delete(ctx, "user-1").Return(errors.New("redis down")).Once()

	require.Error(t, svc.Clear(ctx, "user-1"))
	require.ErrorIs(t, svc.Clear(ctx, ""), domainerrors.ErrMissingUserIdentity)
}

func TestCompareService_List_DefaultsMaxItems(t *testing.T) {
	compareRepo := mockRepo.NewMockCompareRepository(t)
	svc := NewCompareService(compareRepo, &config.Config{})
	ctx := context.Background()

	compareRepo.EXPECT().Get(ctx, "user-1").Return(&entity.CompareSelection{UserID: "user-1", ProductIDs: []string{"a", "b", "c", "d"}}, nil).Once()

	_, err := svc.Add(ctx, "user-1", "e")
	require.ErrorIs(t, err, domainerrors.ErrCompareLimitReached)
}
