// Package entity contains the core business objects of the project.
package entity

// PermissionState is the operating system's answer to "may this app read the device location".
type PermissionState string

const (
	// PermissionUnknown means the user has not decided yet (undetermined).
	PermissionUnknown PermissionState = "unknown"
	// PermissionGranted means location access is allowed.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied means location access was explicitly refused.
	PermissionDenied PermissionState = "denied"
)

// String returns the string representation of the PermissionState.
func (p PermissionState) String() string {
	return string(p)
}

// IsValid checks if the PermissionState is a valid value.
func (p PermissionState) IsValid() bool {
	switch p {
	case PermissionUnknown, PermissionGranted, PermissionDenied:
		return true
	default:
		return false
	}
}

// GateStep is the screen the permission gate currently shows.
type GateStep string

const (
	// GateStepAsk shows the explanation and the "allow" action.
	GateStepAsk GateStep = "ask"
	// GateStepGranted shows the captured location and the "refresh" action.
	GateStepGranted GateStep = "granted"
	// GateStepDenied shows the "open settings" action.
	GateStepDenied GateStep = "denied"
)

// String returns the string representation of the GateStep.
func (s GateStep) String() string {
	return string(s)
}

// StepForPermission maps a permission state to the step the gate opens on.
func StepForPermission(p PermissionState) GateStep {
	switch p {
	case PermissionGranted:
		return GateStepGranted
	case PermissionDenied:
		return GateStepDenied
	default:
		return GateStepAsk
	}
}

// Accuracy is the accuracy tier requested from a coordinate provider.
type Accuracy string

const (
	AccuracyLow      Accuracy = "low"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyHigh     Accuracy = "high"
)
