package main

import (
	"fmt"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"github.com/spf13/cobra"
)

func newCoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cores",
		Short: "Print the number of present cores and their current frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count := service.CoreCount()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "cores: %d\n", count)
			for core := 0; core < min(count, cpu.MaxCores); core++ {
				fmt.Fprintf(out, "cpu%d:  %s\n", core, cpu.ToMHz(service.CurrentFrequency(core)))
			}
			return nil
		},
	}
}

func newTempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "temp",
		Short: "Print the CPU temperature, -1 when unavailable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), service.Temperature())
			return nil
		},
	}
}
