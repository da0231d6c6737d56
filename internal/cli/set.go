package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/models"
)

// Top-level fields set outside the checklist
const (
	fieldNom     = "nom"
	fieldContenu = "contenu"
)

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set one field of a fiche",
		Long: fmt.Sprintf(`Set one field of a fiche.

Fields:
  %s
  %s

Checklist fields:
  %s

Booleans take true or false. Choice and time fields take null to clear them.
Times use HH:MM.`, fieldNom, fieldContenu, strings.Join(models.FieldPaths(), "\n  ")),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				return runSet(ctx, cmd, a, args[0], args[1], args[2])
			})
		},
	}
}

func runSet(ctx context.Context, cmd *cobra.Command, a *app, id, field, value string) error {
	f, err := a.lookup(id)
	if err != nil {
		return err
	}

	var patch models.FichePatch
	switch field {
	case fieldNom:
		patch.Nom = &value
	case fieldContenu:
		patch.Contenu = &value
	default:
		data, err := f.Data.With(field, value)
		if err != nil {
			return err
		}
		patch.Data = &data
	}

	a.store.Patch(ctx, f.ID, patch)
	a.logger.Info("fiche updated", "id", f.ID, "field", field)

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s = %s\n", f.ID, field, value)
	return nil
}
