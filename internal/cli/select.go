package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	var clearSelection bool

	cmd := &cobra.Command{
		Use:   "select <id>",
		Short: "Select the fiche shown by default",
		Args: func(cmd *cobra.Command, args []string) error {
			if clearSelection {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				if clearSelection {
					a.store.ClearSelection(ctx)
					fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
					return nil
				}

				f, err := a.lookup(args[0])
				if err != nil {
					return err
				}
				a.store.Select(ctx, f.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", f.ID, f.DisplayName())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&clearSelection, "clear", false, "clear the selection")

	return cmd
}
