package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// listEntry is the JSON shape of one fiche in the list output
type listEntry struct {
	ID       string `json:"id"`
	Nom      string `json:"nom"`
	Position int    `json:"position"`
	Selected bool   `json:"selected"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fiches in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				return runList(cmd, rootOpts, a)
			})
		},
	}
}

func runList(cmd *cobra.Command, opts *RootOptions, a *app) error {
	out := cmd.OutOrStdout()
	selectedID, hasSelection := a.store.SelectedID()

	list := a.store.List()
	entries := make([]listEntry, 0, len(list))
	for i, f := range list {
		entries = append(entries, listEntry{
			ID:       f.ID,
			Nom:      f.Nom,
			Position: i + 1,
			Selected: hasSelection && f.ID == selectedID,
		})
	}

	if opts.Format == "json" {
		return writeJSON(out, entries)
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "No fiches yet.")
		fmt.Fprintln(out, "Use 'fiches add' to create your first fiche.")
		return nil
	}

	for i, e := range entries {
		marker := " "
		if e.Selected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %d. %s  %s\n", marker, e.Position, e.ID, list[i].DisplayName())
	}
	return nil
}
