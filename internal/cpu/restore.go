package cpu

import (
	"strings"

	"codeberg.org/mutker/cpuctl/internal/settings"
)

// ioMarker excludes I/O scheduler settings from the online cycle.
const ioMarker = "io"

// SettingsSource is the part of the settings store the restore path needs.
type SettingsSource interface {
	GetAllItems(table, category string) ([]settings.Item, error)
}

// ComposeRestoreScript replays items in order. Every item whose name
// carries a core index gets that core cycled offline and online right
// before its own write; io items never do.
func ComposeRestoreScript(t *Topology, items []settings.Item) string {
	var b strings.Builder

	for _, item := range items {
		if core, ok := coreFromName(item.Name); ok {
			b.WriteString(OnlineCoreCommand(t, core))
		}
		b.WriteString(WriteCommand(item.FileName, item.Value))
	}

	return b.String()
}

// coreFromName returns the last decimal digit of name as a core index.
func coreFromName(name string) (int, bool) {
	if name == "" || strings.Contains(name, ioMarker) {
		return 0, false
	}

	for i := len(name) - 1; i >= 0; i-- {
		if c := name[i]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
	}

	return 0, false
}
