package cpu

import (
	"fmt"
	"strings"
)

// WriteCommand returns the shell statements writing value to path.
// Neither argument is escaped.
func WriteCommand(path, value string) string {
	return fmt.Sprintf("chmod 644 %s;\necho \"%s\" > %s;\n", path, value, path)
}

// OnlineCoreCommand cycles core offline and back online. It is empty for
// cores without an online toggle.
func OnlineCoreCommand(t *Topology, core int) string {
	path := t.Path(core, OnlineToggle)
	if path == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(WriteCommand(path, "0"))
	b.WriteString(WriteCommand(path, "1"))
	return b.String()
}

// MPDecisionCommand starts or stops the mpdecision hotplug service.
func MPDecisionCommand(start bool) string {
	if start {
		return "start mpdecision 2> /dev/null;\n"
	}
	return "stop mpdecision 2> /dev/null;\n"
}
