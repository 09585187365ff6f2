// Package entity contains the core business objects of the project.
package entity

// Address is the human-readable result of reverse geocoding a Coordinate.
// Every component except Formatted is optional.
type Address struct {
	Formatted  string  `json:"formatted"`            // Full single-line address used as the display label.
	Street     *string `json:"street,omitempty"`     // Street name with house number when known.
	City       *string `json:"city,omitempty"`       // City, town or village.
	Region     *string `json:"region,omitempty"`     // State, province or region.
	PostalCode *string `json:"postalCode,omitempty"` // Postal or ZIP code.
	Country    *string `json:"country,omitempty"`    // Country name.
}

// HasLabel reports whether the address carries a usable formatted label.
func (a *Address) HasLabel() bool {
	return a != nil && a.Formatted != ""
}
