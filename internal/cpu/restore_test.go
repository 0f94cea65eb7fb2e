package cpu_test

import (
	"testing"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"codeberg.org/mutker/cpuctl/internal/settings"
	"github.com/stretchr/testify/assert"
)

func item(name, file, value string) settings.Item {
	return settings.Item{
		Table:    settings.TableBootup,
		Category: settings.CategoryCPU,
		Name:     name,
		FileName: file,
		Value:    value,
	}
}

func TestWriteCommand(t *testing.T) {
	assert.Equal(t,
		"chmod 644 /sys/x;\necho \"42\" > /sys/x;\n",
		cpu.WriteCommand("/sys/x", "42"))
}

func TestOnlineCoreCommand(t *testing.T) {
	topo := cpu.NewTopology()
	online := topo.Path(2, cpu.OnlineToggle)

	assert.Equal(t,
		cpu.WriteCommand(online, "0")+cpu.WriteCommand(online, "1"),
		cpu.OnlineCoreCommand(topo, 2))
	assert.Empty(t, cpu.OnlineCoreCommand(topo, 0))
	// Unknown cores fall back to core 0, which has no toggle
	assert.Empty(t, cpu.OnlineCoreCommand(topo, 9))
}

func TestMPDecisionCommand(t *testing.T) {
	assert.Equal(t, "start mpdecision 2> /dev/null;\n", cpu.MPDecisionCommand(true))
	assert.Equal(t, "stop mpdecision 2> /dev/null;\n", cpu.MPDecisionCommand(false))
}

func TestComposeRestoreScript(t *testing.T) {
	topo := cpu.NewTopology()
	online1 := topo.Path(1, cpu.OnlineToggle)
	scheduler := "/sys/block/mmcblk0/queue/scheduler"

	script := cpu.ComposeRestoreScript(topo, []settings.Item{
		item("cpu1_online", online1, "1"),
		item("io_sched", scheduler, "noop"),
	})

	want := cpu.WriteCommand(online1, "0") +
		cpu.WriteCommand(online1, "1") +
		cpu.WriteCommand(online1, "1") +
		cpu.WriteCommand(scheduler, "noop")
	assert.Equal(t, want, script)
}

func TestComposeRestoreScriptCoreSelection(t *testing.T) {
	topo := cpu.NewTopology()
	maxFreq3 := topo.Path(3, cpu.MaxFrequency)
	online3 := topo.Path(3, cpu.OnlineToggle)

	tests := []struct {
		name string
		item settings.Item
		want string
	}{
		{
			name: "trailing digit",
			item: item("cpu_max_freq3", maxFreq3, "1800000"),
			want: cpu.WriteCommand(online3, "0") + cpu.WriteCommand(online3, "1") +
				cpu.WriteCommand(maxFreq3, "1800000"),
		},
		{
			name: "core zero has no cycle",
			item: item("cpu_governor0", "/sys/gov0", "ondemand"),
			want: cpu.WriteCommand("/sys/gov0", "ondemand"),
		},
		{
			name: "no digit",
			item: item("cpu_governor", "/sys/gov", "performance"),
			want: cpu.WriteCommand("/sys/gov", "performance"),
		},
		{
			name: "io setting with digit",
			item: item("io_read_ahead1", "/sys/ra", "512"),
			want: cpu.WriteCommand("/sys/ra", "512"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cpu.ComposeRestoreScript(topo, []settings.Item{tt.item}))
		})
	}
}

func TestComposeRestoreScriptEmpty(t *testing.T) {
	assert.Empty(t, cpu.ComposeRestoreScript(cpu.NewTopology(), nil))
}
