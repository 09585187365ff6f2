// Package entity contains the core business objects of the project.
package entity

import "time"

// UserLocationRecord is the persisted last known location of a user.
// There is exactly one record per user and every save overwrites it.
type UserLocationRecord struct {
	UserID       string     `json:"user_id"`
	LastLocation Coordinate `json:"last_location"`
	LastAddress  *Address   `json:"last_address"`
	UpdatedAt    time.Time  `json:"updated_at"` // Assigned by the store on write.
}

// LocationUpdate is the set of fields a save merges into a UserLocationRecord.
// Fields of the record that are not listed here are left untouched.
type LocationUpdate struct {
	LastLocation Coordinate
	LastAddress  *Address
}

// SavedLocation is what the persistence pipeline hands back to the caller
// so the label can be shown without reading the record again.
type SavedLocation struct {
	Coordinate Coordinate `json:"coordinate"`
	Address    *Address   `json:"address"`
}
