package main

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/mutker/cpuctl/internal/cpu"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Read available, maximum and minimum frequencies through the root shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetProbeTimeout())
			defer cancel()

			snapshot, err := frequencyProbe().Await(ctx)
			if err != nil {
				return err
			}

			available := make([]string, len(snapshot.Available))
			for i, freq := range snapshot.Available {
				available[i] = cpu.ToMHz(freq)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "available: %s\n", strings.Join(available, ", "))
			fmt.Fprintf(out, "maximum:   %s\n", cpu.ToMHz(snapshot.Maximum))
			fmt.Fprintf(out, "minimum:   %s\n", cpu.ToMHz(snapshot.Minimum))
			return nil
		},
	}
}
