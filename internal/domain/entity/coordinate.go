// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// Coordinate is a single latitude/longitude fix produced by a location provider.
// It is never mutated after capture.
type Coordinate struct {
	Latitude  float64  `json:"latitude"`  // Degrees, [-90, 90].
	Longitude float64  `json:"longitude"` // Degrees, [-180, 180].
	Accuracy  *float64 `json:"accuracy"`  // Horizontal accuracy in meters, nil when the provider does not report it.
	Timestamp int64    `json:"timestamp"` // Capture time in epoch milliseconds.
}

// IsValidCoords reports whether both latitude and longitude are finite numbers.
// Zero is a valid value for either axis.
func IsValidCoords(c *Coordinate) bool {
	if c == nil {
		return false
	}

	return isFinite(c.Latitude) && isFinite(c.Longitude)
}

// CapturedAt returns the capture time of the fix.
func (c Coordinate) CapturedAt() time.Time {
	return time.UnixMilli(c.Timestamp)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
