package cpu_test

import (
	"testing"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"github.com/stretchr/testify/assert"
)

func TestTopologyPaths(t *testing.T) {
	topo := cpu.NewTopology()

	tests := []struct {
		core   int
		metric cpu.Metric
		want   string
	}{
		{0, cpu.CurrentFrequency, "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"},
		{0, cpu.MaxFrequency, "/sys/devices/system/cpu/cpu0/cpufreq/scaling_max_freq"},
		{0, cpu.MinFrequency, "/sys/devices/system/cpu/cpu0/cpufreq/scaling_min_freq"},
		{0, cpu.OnlineToggle, ""},
		{1, cpu.OnlineToggle, "/sys/devices/system/cpu/cpu1/online"},
		{2, cpu.CurrentFrequency, "/sys/devices/system/cpu/cpu2/cpufreq/scaling_cur_freq"},
		{3, cpu.MinFrequency, "/sys/devices/system/cpu/cpu3/cpufreq/scaling_min_freq"},
		{3, cpu.OnlineToggle, "/sys/devices/system/cpu/cpu3/online"},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, topo.Path(tt.core, tt.metric))
		})
	}
}

func TestTopologyFallsBackToCoreZero(t *testing.T) {
	topo := cpu.NewTopology()

	for _, core := range []int{4, 7, 99, -1} {
		for _, metric := range []cpu.Metric{cpu.CurrentFrequency, cpu.MaxFrequency, cpu.MinFrequency, cpu.OnlineToggle} {
			path, known := topo.Lookup(core, metric)
			assert.False(t, known)
			assert.Equal(t, topo.Path(0, metric), path)
		}
	}

	_, known := topo.Lookup(2, cpu.CurrentFrequency)
	assert.True(t, known)
}

func TestTopologyUnknownMetric(t *testing.T) {
	assert.Empty(t, cpu.NewTopology().Path(1, cpu.Metric(42)))
	assert.Equal(t, "metric(42)", cpu.Metric(42).String())
}

func TestTopologyWithRoot(t *testing.T) {
	topo := cpu.NewTopologyWithRoot("/tmp/root")

	assert.Equal(t, "/tmp/root/sys/devices/system/cpu/cpu1/online", topo.Path(1, cpu.OnlineToggle))
	assert.Equal(t, "/tmp/root/sys/devices/system/cpu/present", topo.PresentCoresPath())
	assert.Equal(t, "/tmp/root/sys/class/thermal/thermal_zone0/temp", topo.TemperaturePath())
	assert.Equal(t,
		"/tmp/root/sys/devices/system/cpu/cpu0/cpufreq/scaling_available_frequencies",
		topo.AvailableFrequenciesPath())
	assert.Empty(t, topo.Path(0, cpu.OnlineToggle))
}

func TestParseCoreRange(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0-3", 4},
		{"0-7", 8},
		{"0-0", 1},
		{"2-3", 2},
		{"0-3\n", 4},
		{"", 1},
		{"garbage", 1},
		{"0", 1},
		{"a-b", 1},
		{"0-b", 1},
		{"5-2", 1},
		{"-3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cpu.ParseCoreRange(tt.in))
		})
	}
}
