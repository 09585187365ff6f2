// Package entity contains the core business objects of the project.
package entity

import "time"

// CompareSelection is the ordered set of products a buyer picked for side-by-side comparison.
type CompareSelection struct {
	UserID     string    `json:"user_id"`
	ProductIDs []string  `json:"product_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}
