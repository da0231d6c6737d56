package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move the fiche at position from to position to (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				if !a.store.Reorder(ctx, from-1, to-1) {
					return fmt.Errorf("position out of range: have %d fiche(s)", a.store.Len())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %d to %d\n", from, to)
				return nil
			})
		},
	}
}

// NewDragCommand creates the drag command.
func NewDragCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drag <active-id> <over-id>",
		Short: "Drop one fiche onto another, taking its place",
		Long: `Drop one fiche onto another, taking its place.

Dropping a fiche on itself, or on an id that no longer exists, leaves the
order unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, a *app) error {
				if !a.store.Move(ctx, args[0], args[1]) {
					fmt.Fprintln(cmd.OutOrStdout(), "Order unchanged")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to position %d\n", args[0], a.store.Index(args[0])+1)
				return nil
			})
		},
	}
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: must be a number starting at 1", s)
	}
	return n, nil
}
