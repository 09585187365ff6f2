package geoip

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCityReader struct {
	city *geoip2.City
	err  error
}

func (s stubCityReader) City(_ net.IP) (*geoip2.City, error) {
	return s.city, s.err
}

func TestCoordinateProvider_CurrentPosition(t *testing.T) {
	city := &geoip2.City{}
	city.Location.Latitude = 6.4474
	city.Location.Longitude = 3.3903
	city.Location.AccuracyRadius = 20

	p := newCoordinateProvider(stubCityReader{city: city}, net.ParseIP("102.89.0.1"))
	p.now = func() time.Time { return time.UnixMilli(1700000000000) }

	coord, err := p.CurrentPosition(context.Background(), entity.AccuracyBalanced)
	require.NoError(t, err)
	assert.InDelta(t, 6.4474, coord.Latitude, 1e-9)
	assert.InDelta(t, 3.3903, coord.Longitude, 1e-9)
	require.NotNil(t, coord.Accuracy)
	assert.InDelta(t, 20000, *coord.Accuracy, 1e-9)
	assert.Equal(t, int64(1700000000000), coord.Timestamp)
}

func TestCoordinateProvider_Failures(t *testing.T) {
	tests := []struct {
		name   string
		reader stubCityReader
	}{
		{name: "lookup error", reader: stubCityReader{err: errors.New("invalid database")}},
		{name: "no location in record", reader: stubCityReader{city: &geoip2.City{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newCoordinateProvider(tt.reader, net.ParseIP("10.0.0.1"))

			_, err := p.CurrentPosition(context.Background(), entity.AccuracyHigh)
			require.ErrorIs(t, err, domainerrors.ErrFetchFailure)
		})
	}
}
