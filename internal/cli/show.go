package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/fiches/internal/models"
	"github.com/iudanet/fiches/internal/render"
)

// errNoSelection is returned when no id is given and nothing is selected
var errNoSelection = errors.New("no fiche selected: pass an id or run 'fiches select <id>'")

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a fiche, the selected one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				f, err := a.resolve(args)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if rootOpts.Format == "json" {
					return writeJSON(out, f)
				}
				return render.NewPrinter(render.StylerFor(out)).Render(out, f)
			})
		},
	}
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "print [id]",
		Short: "Write the print view of a fiche to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				f, err := a.resolve(args)
				if err != nil {
					return err
				}

				if output == "" || output == "-" {
					out := cmd.OutOrStdout()
					return render.NewPrinter(render.StylerFor(out)).Render(out, f)
				}
				return printToFile(output, f)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func printToFile(path string, f models.Fiche) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return render.NewPrinter(render.PlainStyler{}).Render(file, f)
}

// resolve picks the fiche named by args[0], or the selected one
func (a *app) resolve(args []string) (models.Fiche, error) {
	if len(args) == 1 {
		return a.lookup(args[0])
	}

	f, ok := a.store.Selected()
	if !ok {
		return models.Fiche{}, errNoSelection
	}
	return f, nil
}
