package main

import (
	"fmt"
	"strconv"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"github.com/spf13/cobra"
)

func newOnlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "online <core>",
		Short: "Cycle a core offline and back online",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := parseCore(args[0])
			if err != nil {
				return err
			}

			script := cpu.OnlineCoreCommand(service.Topology(), core)
			if script == "" {
				return errors.New().WithMessage(errors.ErrInvalidCore, fmt.Sprintf("core %d has no online toggle", core))
			}

			if err := runRoot(cmd.Context(), script); err != nil {
				return err
			}
			logger.Info().Int("core", core).Msg("Core onlined")
			return nil
		},
	}
}

func newMPDecisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mpdecision start|stop",
		Short:     "Start or stop the mpdecision hotplug service",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"start", "stop"},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := args[0] == "start"
			if err := runRoot(cmd.Context(), cpu.MPDecisionCommand(start)); err != nil {
				return err
			}
			logger.Info().Bool("start", start).Msg("mpdecision toggled")
			return nil
		},
	}
}

// parseCore accepts known core slots only; the topology would silently
// map anything else to core 0.
func parseCore(arg string) (int, error) {
	core, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrInvalidCore, err)
	}
	if _, known := service.Topology().Lookup(core, cpu.OnlineToggle); !known {
		return 0, errors.New().WithData(errors.ErrInvalidCore, core)
	}
	return core, nil
}
