package cpu

import (
	"strconv"
	"strings"
)

// ParseCoreRange returns the core count described by a "low-high"
// descriptor such as /sys/devices/system/cpu/present. Anything that is
// not a well formed, non-negative range counts as a single core.
func ParseCoreRange(descriptor string) int {
	parts := strings.Split(strings.TrimSpace(descriptor), "-")
	if len(parts) < 2 {
		return 1
	}

	low, err := strconv.Atoi(parts[0])
	if err != nil {
		return 1
	}
	high, err := strconv.Atoi(parts[1])
	if err != nil {
		return 1
	}

	count := high - low + 1
	if count < 0 {
		return 1
	}

	return count
}
