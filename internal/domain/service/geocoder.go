package service

import (
	"context"

	"afrimart/internal/domain/entity"
)

// ReverseGeocoder translates a coordinate into the best matching address.
// A nil address with a nil error means the provider found nothing.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coord entity.Coordinate) (*entity.Address, error)
}
