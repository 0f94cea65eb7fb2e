package cpu

import (
	"strings"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/settings"
)

// Service answers synchronous CPU queries from sysfs. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	reader   FileReader
	topology *Topology
}

func NewService(reader FileReader, topology *Topology) *Service {
	if reader == nil {
		reader = SysfsReader{}
	}
	if topology == nil {
		topology = DefaultTopology
	}

	return &Service{reader: reader, topology: topology}
}

func (s *Service) Topology() *Topology {
	return s.topology
}

// Temperature returns the clamped CPU temperature or
// TemperatureUnavailable.
func (s *Service) Temperature() int {
	return ClampTemperature(s.reader.ReadOneLine(s.topology.TemperaturePath()))
}

// CoreCount returns the number of present cores, at least 1.
func (s *Service) CoreCount() int {
	return ParseCoreRange(s.reader.ReadOneLine(s.topology.PresentCoresPath()))
}

// CurrentFrequency returns core's raw current frequency in kHz, or ""
// when the core is offline or the value is unreadable.
func (s *Service) CurrentFrequency(core int) string {
	return s.reader.ReadOneLine(s.topology.Path(core, CurrentFrequency))
}

// AvailableFrequencies returns the advertised scaling frequencies, or
// nil when the file is empty or missing.
func (s *Service) AvailableFrequencies() []string {
	raw := s.reader.ReadOneLine(s.topology.AvailableFrequenciesPath())
	if raw == "" {
		return nil
	}

	return strings.Fields(raw)
}

// RestoreScript composes the boot restore script from the persisted CPU
// settings in src.
func (s *Service) RestoreScript(src SettingsSource) (string, error) {
	items, err := src.GetAllItems(settings.TableBootup, settings.CategoryCPU)
	if err != nil {
		return "", errors.New().Wrap(ErrSettingsLoad, err)
	}

	return ComposeRestoreScript(s.topology, items), nil
}
