// Package units provides shared constants and validation for angle units
package units

import "math"

// Unit constants
const (
	DEG = "deg"
	RAD = "rad"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{DEG, RAD}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "deg, rad"
}

// ConvertAngle converts an angle from degrees to the target units
// The capture format exports joint angles in degrees
func ConvertAngle(angleDeg float64, targetUnits string) float64 {
	switch targetUnits {
	case RAD:
		return angleDeg * math.Pi / 180.0
	case DEG:
		return angleDeg // no conversion needed
	default:
		return angleDeg // default to degrees if unknown unit
	}
}

// ConvertMatrix applies ConvertAngle to every element of a row-major matrix,
// returning a new matrix. Quaternion components are unitless and must not
// be passed through this function.
func ConvertMatrix(rows [][]float64, targetUnits string) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		converted := make([]float64, len(row))
		for j, v := range row {
			converted[j] = ConvertAngle(v, targetUnits)
		}
		out[i] = converted
	}
	return out
}
