// Package model holds the GORM table structs of the persistence layer.
package model

import (
	"time"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// One row per user; saving a new location overwrites the location columns only.
type UserLocationModel struct {
	UserID         string       `gorm:"type:varchar(128);primaryKey"`
	Latitude       float64      `gorm:"type:double precision;not null"`
	Longitude      float64      `gorm:"type:double precision;not null"`
	AccuracyMeters *float64     `gorm:"type:double precision"`
	CapturedAt     int64        `gorm:"not null"` // epoch millis reported by the device
	Address        *AddressData `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}

// AddressData is the JSON document stored in user_locations.address.
type AddressData struct {
	Formatted  string  `json:"formatted"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Region     *string `json:"region,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty"`
}
