package task

import "strings"

// ParsePriority parses loosely-cased user or service input to a Priority.
// Empty or unrecognized input returns DefaultPriority.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low":
		return PriorityLow
	case "medium", "med":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "urgent":
		return PriorityUrgent
	default:
		return DefaultPriority
	}
}

// ParseEnergy parses loosely-cased input to an EnergyLevel.
func ParseEnergy(input string) EnergyLevel {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low":
		return EnergyLow
	case "medium", "med":
		return EnergyMedium
	case "high":
		return EnergyHigh
	default:
		return DefaultEnergy
	}
}
