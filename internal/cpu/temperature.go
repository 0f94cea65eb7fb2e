package cpu

import (
	"strconv"
	"strings"
)

const (
	// TemperatureUnavailable is returned when no valid reading exists.
	TemperatureUnavailable = -1

	minTemperature = 0
	maxTemperature = 100
)

// ClampTemperature parses a raw sensor value and clamps it to [0, 100].
// Blank or malformed input yields TemperatureUnavailable.
func ClampTemperature(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TemperatureUnavailable
	}

	temp, err := strconv.Atoi(raw)
	if err != nil {
		return TemperatureUnavailable
	}

	return clamp(temp, minTemperature, maxTemperature)
}

func clamp(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}

	if value > maxValue {
		return maxValue
	}

	return value
}
