package main

import (
	"fmt"
	"text/tabwriter"

	"codeberg.org/mutker/cpuctl/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the boot-time CPU settings replayed by restore",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored settings in restore order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				store, err := openSettings()
				if err != nil {
					return err
				}
				defer store.Close()

				items, err := store.GetAllItems(settings.TableBootup, settings.CategoryCPU)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tFILE\tVALUE")
				for _, item := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, item.FileName, item.Value)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "set <name> <file> <value>",
			Short: "Add or update a setting",
			Args:  cobra.ExactArgs(3),
			RunE: func(_ *cobra.Command, args []string) error {
				store, err := openSettings()
				if err != nil {
					return err
				}
				defer store.Close()

				return store.Put(settings.Item{
					Table:    settings.TableBootup,
					Category: settings.CategoryCPU,
					Name:     args[0],
					FileName: args[1],
					Value:    args[2],
				})
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove a setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				store, err := openSettings()
				if err != nil {
					return err
				}
				defer store.Close()

				return store.Remove(settings.TableBootup, settings.CategoryCPU, args[0])
			},
		},
	)

	return cmd
}
