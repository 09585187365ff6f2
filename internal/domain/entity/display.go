// Package entity contains the core business objects of the project.
package entity

const (
	// LabelNoLocation is shown when nothing usable is known about the user's location.
	LabelNoLocation = "No location"
	// LabelLocationSaved is shown when a location was stored but has no formatted address.
	LabelLocationSaved = "Location saved"
)

// LocationDisplay is the status and label the UI shows next to the location picker.
// Status mirrors the gate steps but is presentation only; a "denied" display
// does not mean the operating system refused access.
type LocationDisplay struct {
	Status GateStep `json:"status"`
	Label  string   `json:"label"`
}

// NoLocationDisplay is the fallback display used when no location is available.
func NoLocationDisplay() LocationDisplay {
	return LocationDisplay{Status: GateStepDenied, Label: LabelNoLocation}
}

// GateOutcome is returned when the gate closes.
type GateOutcome struct {
	Coordinate *Coordinate     `json:"coordinate,omitempty"`
	Display    LocationDisplay `json:"display"`
}

// StartupResult tells the caller what to show on app launch.
type StartupResult struct {
	ShowGate bool            `json:"show_gate"`
	Display  LocationDisplay `json:"display"`
}
