package cpu

import (
	"strconv"
	"strings"
)

const (
	kHzPerMHz = 1000
	mhzSuffix = " MHz"
)

// OfflineLabel is shown in place of a frequency that could not be read.
var OfflineLabel = "Offline"

// ToMHz converts a raw kHz string to "<n> MHz", truncating. Blank,
// malformed or negative input yields OfflineLabel.
func ToMHz(rawKHz string) string {
	rawKHz = strings.TrimSpace(rawKHz)
	if rawKHz == "" {
		return OfflineLabel
	}

	value, err := strconv.Atoi(rawKHz)
	if err != nil || value < 0 {
		return OfflineLabel
	}

	return strconv.Itoa(value/kHzPerMHz) + mhzSuffix
}

// FromMHz converts a "<n> MHz" label back to a kHz string. Blank or
// malformed input yields "0".
func FromMHz(label string) string {
	if label == "" {
		return "0"
	}

	value, err := strconv.Atoi(strings.TrimSuffix(label, mhzSuffix))
	if err != nil {
		return "0"
	}

	return strconv.Itoa(value * kHzPerMHz)
}
