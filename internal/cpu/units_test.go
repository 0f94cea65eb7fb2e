package cpu_test

import (
	"testing"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"github.com/stretchr/testify/assert"
)

func TestToMHz(t *testing.T) {
	assert.Equal(t, "1800 MHz", cpu.ToMHz("1800000"))
	assert.Equal(t, "1 MHz", cpu.ToMHz("1999"))
	assert.Equal(t, "0 MHz", cpu.ToMHz("999"))
	assert.Equal(t, "1800 MHz", cpu.ToMHz(" 1800000\n"))
	assert.Equal(t, cpu.OfflineLabel, cpu.ToMHz(""))
	assert.Equal(t, cpu.OfflineLabel, cpu.ToMHz("   "))
	assert.Equal(t, cpu.OfflineLabel, cpu.ToMHz("abc"))
	assert.Equal(t, cpu.OfflineLabel, cpu.ToMHz("-1"))
	assert.Equal(t, cpu.OfflineLabel, cpu.ToMHz("-1000"))
}

func TestFromMHz(t *testing.T) {
	assert.Equal(t, "1800000", cpu.FromMHz("1800 MHz"))
	assert.Equal(t, "300000", cpu.FromMHz("300"))
	assert.Equal(t, "0", cpu.FromMHz(""))
	assert.Equal(t, "0", cpu.FromMHz("fast MHz"))
	assert.Equal(t, "0", cpu.FromMHz(cpu.OfflineLabel))
}

func TestMHzRoundTrip(t *testing.T) {
	for _, raw := range []string{"300000", "1200000", "2457600"} {
		back := cpu.FromMHz(cpu.ToMHz(raw))
		assert.Equal(t, cpu.ToMHz(raw), cpu.ToMHz(back))
	}
}

func TestClampTemperature(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"45", 45},
		{"0", 0},
		{"100", 100},
		{"150", 100},
		{"-20", 0},
		{" 37\n", 37},
		{"", cpu.TemperatureUnavailable},
		{"hot", cpu.TemperatureUnavailable},
		{"45000x", cpu.TemperatureUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cpu.ClampTemperature(tt.in))
		})
	}
}
