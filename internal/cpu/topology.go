package cpu

import (
	"fmt"
	"path/filepath"
)

// MaxCores is the number of cores with known sysfs path slots.
const MaxCores = 4

const (
	cpuDevicesPath     = "/sys/devices/system/cpu"
	availableFreqsPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_available_frequencies"
	presentCoresPath   = "/sys/devices/system/cpu/present"
	temperaturePath    = "/sys/class/thermal/thermal_zone0/temp"

	curFreqFile = "scaling_cur_freq"
	maxFreqFile = "scaling_max_freq"
	minFreqFile = "scaling_min_freq"
	onlineFile  = "online"
)

// Metric is a per-core hardware attribute addressable through sysfs.
type Metric int

const (
	CurrentFrequency Metric = iota
	MaxFrequency
	MinFrequency
	OnlineToggle

	metricCount
)

func (m Metric) String() string {
	switch m {
	case CurrentFrequency:
		return "current_frequency"
	case MaxFrequency:
		return "max_frequency"
	case MinFrequency:
		return "min_frequency"
	case OnlineToggle:
		return "online"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Topology resolves (core, metric) pairs to sysfs paths. The table is
// built once and never mutated, so a Topology is safe for concurrent use.
//
// Core 0 cannot be taken offline and has an empty OnlineToggle path.
// Indices outside [0, MaxCores) resolve to core 0's paths.
type Topology struct {
	paths       [MaxCores][metricCount]string
	available   string
	present     string
	temperature string
}

// DefaultTopology is the shared table for the running system.
var DefaultTopology = NewTopology()

func NewTopology() *Topology {
	return NewTopologyWithRoot("")
}

// NewTopologyWithRoot builds the table with every path prefixed by root,
// for chroots and tests.
func NewTopologyWithRoot(root string) *Topology {
	join := func(path string) string {
		if root == "" {
			return path
		}
		return filepath.Join(root, path)
	}

	t := &Topology{
		available:   join(availableFreqsPath),
		present:     join(presentCoresPath),
		temperature: join(temperaturePath),
	}

	for core := 0; core < MaxCores; core++ {
		dir := join(fmt.Sprintf("%s/cpu%d", cpuDevicesPath, core))
		t.paths[core][CurrentFrequency] = dir + "/cpufreq/" + curFreqFile
		t.paths[core][MaxFrequency] = dir + "/cpufreq/" + maxFreqFile
		t.paths[core][MinFrequency] = dir + "/cpufreq/" + minFreqFile
		if core > 0 {
			t.paths[core][OnlineToggle] = dir + "/" + onlineFile
		}
	}

	return t
}

// Path returns the sysfs path for metric on core. An empty result means
// the combination does not apply and callers must treat it as a no-op.
func (t *Topology) Path(core int, metric Metric) string {
	path, _ := t.Lookup(core, metric)
	return path
}

// Lookup is Path that also reports whether core was a known slot rather
// than the core 0 fallback.
func (t *Topology) Lookup(core int, metric Metric) (string, bool) {
	if metric < 0 || metric >= metricCount {
		return "", false
	}

	known := core >= 0 && core < MaxCores
	if !known {
		core = 0
	}

	return t.paths[core][metric], known
}

func (t *Topology) AvailableFrequenciesPath() string {
	return t.available
}

func (t *Topology) PresentCoresPath() string {
	return t.present
}

func (t *Topology) TemperaturePath() string {
	return t.temperature
}
