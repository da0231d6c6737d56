package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/cli/iocli"
	"github.com/iudanet/fiches/internal/fiches"
)

// NewRenameCommand creates the rename command.
func NewRenameCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> [name]",
		Short: "Rename a fiche",
		Long: `Rename a fiche.

Without a name the new name is read from the terminal. An empty line or Esc
cancels and keeps the current name.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				io := iocli.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout())
				return runRename(ctx, a, io, args)
			})
		},
	}
}

func runRename(ctx context.Context, a *app, io iocli.IO, args []string) error {
	f, err := a.lookup(args[0])
	if err != nil {
		return err
	}

	editor := fiches.NewNameEditor(a.store)
	if err := editor.Start(f); err != nil {
		return err
	}

	name := ""
	if len(args) == 2 {
		name = args[1]
	} else {
		name, err = io.ReadInput(fmt.Sprintf("Nom [%s] : ", f.DisplayName()))
		if err != nil && !errors.Is(err, iocli.ErrCancelled) {
			editor.Cancel()
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	if name == "" {
		editor.Cancel()
		io.Println("Rename cancelled.")
		return nil
	}

	if err := editor.SetName(name); err != nil {
		return err
	}
	if !editor.Commit(ctx) {
		return fmt.Errorf("fiche %s: %w", f.ID, fiches.ErrNotFound)
	}

	a.logger.Info("fiche renamed", "id", f.ID)
	io.Printf("Renamed %s to %q\n", f.ID, name)
	return nil
}
