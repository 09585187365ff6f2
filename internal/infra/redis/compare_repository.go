package redis

import (
	"context"
	"encoding/json"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	compareKeyPrefix  = "compare:"
	defaultCompareTTL = 30 * 24 * time.Hour
)

type compareDocument struct {
	ProductIDs []string  `json:"product_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// compareRepository keeps one JSON document per user; the TTL is refreshed on every save.
type compareRepository struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// NewCompareRepository is the constructor for compareRepository.
func NewCompareRepository(rdb goredis.Cmdable, cfg *config.Config) repository.CompareRepository {
	ttl := defaultCompareTTL
	if cfg.Compare != nil && cfg.Compare.TTL > 0 {
		ttl = cfg.Compare.TTL
	}

	return &compareRepository{rdb: rdb, ttl: ttl}
}

func compareKey(userID string) string {
	return compareKeyPrefix + userID
}

func (repo *compareRepository) Get(ctx context.Context, userID string) (*entity.CompareSelection, error) {
	raw, err := repo.rdb.Get(ctx, compareKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return &entity.CompareSelection{UserID: userID, ProductIDs: []string{}}, nil
		}

		return nil, errors.Wrap(err, "failed to read compare selection")
	}

	var doc compareDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode compare selection")
	}

	if doc.ProductIDs == nil {
		doc.ProductIDs = []string{}
	}

	return &entity.CompareSelection{
		UserID:     userID,
		ProductIDs: doc.ProductIDs,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}

func (repo *compareRepository) Save(ctx context.Context, selection *entity.CompareSelection) error {
	if len(selection.ProductIDs) == 0 {
		return repo.Delete(ctx, selection.UserID)
	}

	raw, err := json.Marshal(compareDocument{
		ProductIDs: selection.ProductIDs,
		UpdatedAt:  selection.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode compare selection")
	}

	return errors.Wrap(repo.rdb.Set(ctx, compareKey(selection.UserID), raw, repo.ttl).Err(), "failed to save compare selection")
}

func (repo *compareRepository) Delete(ctx context.Context, userID string) error {
	return errors.Wrap(repo.rdb.Del(ctx, compareKey(userID)).Err(), "failed to delete compare selection")
}
