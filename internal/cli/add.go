package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/models"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var selectNew bool

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a fiche at the top of the list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				f := a.store.Create(ctx)

				if len(args) == 1 {
					name := strings.TrimSpace(args[0])
					a.store.Patch(ctx, f.ID, models.FichePatch{Nom: &name})
					f.Nom = name
				}
				if selectNew {
					a.store.Select(ctx, f.ID)
				}

				a.logger.Info("fiche created", "id", f.ID)

				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), f)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created fiche %s (%s)\n", f.ID, f.DisplayName())
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&selectNew, "select", "s", false, "select the new fiche")

	return cmd
}
