package main

import (
	"codeberg.org/mutker/cpuctl/internal/config"
	"codeberg.org/mutker/cpuctl/internal/cpu"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/settings"
	"codeberg.org/mutker/cpuctl/internal/shell"
	"github.com/spf13/cobra"
)

const dispatcherBuffer = 8

var (
	cfg        *config.Config
	sysfsRoot  string
	shells     *shell.Pool
	dispatcher *cpu.SerialDispatcher
	service    *cpu.Service
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cpuctl",
		Short:         "Inspect and control CPU frequency, hotplug and boot settings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&sysfsRoot, "sysfs-root", "", "Prefix for every sysfs path")
	_ = root.PersistentFlags().MarkHidden("sysfs-root")

	root.AddCommand(
		newMonitorCmd(),
		newProbeCmd(),
		newRestoreCmd(),
		newOnlineCmd(),
		newMPDecisionCmd(),
		newCoresCmd(),
		newTempCmd(),
		newSettingsCmd(),
	)

	return root
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(string(cfg.LogLevel), logger.IsService())
	logger.Debug().Str("file", cfg.ConfigFile()).Msg("Config loaded")

	topology := cpu.DefaultTopology
	if sysfsRoot != "" {
		topology = cpu.NewTopologyWithRoot(sysfsRoot)
	}
	service = cpu.NewService(cpu.SysfsReader{}, topology)

	return nil
}

// frequencyProbe lazily starts the shell pool and delivery goroutine.
func frequencyProbe() *cpu.FrequencyProbe {
	if dispatcher == nil {
		dispatcher = cpu.NewSerialDispatcher(dispatcherBuffer)
	}
	return cpu.NewFrequencyProbe(shellPool(), dispatcher, service.Topology(), logger.New("probe"))
}

func shellPool() *shell.Pool {
	if shells == nil {
		sc := cfg.GetShell()
		shells = shell.NewPool(shell.Config{
			Binary: sc.Binary,
			Su:     sc.Su,
			Queue:  sc.Queue,
		}, logger.New("shell"))
	}
	return shells
}

func openSettings() (settings.Store, error) {
	return settings.NewStore(settings.Config{DBPath: cfg.GetSettingsDBPath()}, logger.New("settings"))
}

func cleanup() {
	if dispatcher != nil {
		dispatcher.Close()
	}
	if shells != nil {
		if err := shells.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close shells")
		}
	}
}
