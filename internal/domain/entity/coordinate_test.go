package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCoords(t *testing.T) {
	tests := []struct {
		name  string
		coord *Coordinate
		want  bool
	}{
		{name: "nil", coord: nil, want: false},
		{name: "origin", coord: &Coordinate{Latitude: 0, Longitude: 0}, want: true},
		{name: "negative zero", coord: &Coordinate{Latitude: math.Copysign(0, -1), Longitude: math.Copysign(0, -1)}, want: true},
		{name: "southern and western hemisphere", coord: &Coordinate{Latitude: -33.9249, Longitude: -18.4241}, want: true},
		{name: "bounds", coord: &Coordinate{Latitude: -90, Longitude: 180}, want: true},
		{name: "out of range but finite", coord: &Coordinate{Latitude: 91, Longitude: -181}, want: true},
		{name: "NaN latitude", coord: &Coordinate{Latitude: math.NaN(), Longitude: 3.39}, want: false},
		{name: "NaN longitude", coord: &Coordinate{Latitude: 6.45, Longitude: math.NaN()}, want: false},
		{name: "positive infinity", coord: &Coordinate{Latitude: math.Inf(1), Longitude: 3.39}, want: false},
		{name: "negative infinity", coord: &Coordinate{Latitude: 6.45, Longitude: math.Inf(-1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCoords(tt.coord))
		})
	}
}

func TestCoordinate_CapturedAt(t *testing.T) {
	c := Coordinate{Timestamp: 1700000000000}

	assert.True(t, c.CapturedAt().Equal(time.UnixMilli(1700000000000)))
}
