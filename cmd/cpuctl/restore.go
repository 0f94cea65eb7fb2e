package main

import (
	"fmt"

	"codeberg.org/mutker/cpuctl/internal/logger"
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replay the stored boot-time CPU settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openSettings()
			if err != nil {
				return err
			}
			defer store.Close()

			script, err := service.RestoreScript(store)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), script)
				return nil
			}
			if script == "" {
				logger.Info().Msg("No boot settings stored")
				return nil
			}

			if err := runRoot(cmd.Context(), script); err != nil {
				return err
			}
			logger.Info().Msg("Boot settings restored")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the script instead of running it")
	return cmd
}
