package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/fiches"
	"github.com/iudanet/fiches/internal/validation"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a fiche permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				id := args[0]
				if err := validation.ValidateID(id); err != nil {
					return err
				}
				if !a.store.Remove(ctx, id) {
					return fmt.Errorf("fiche %s: %w", id, fiches.ErrNotFound)
				}

				a.logger.Info("fiche deleted", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted fiche %s\n", id)
				return nil
			})
		},
	}
}
