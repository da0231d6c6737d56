// Package cli implements the fiches command line editor.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// BuildInfo is set via ldflags in main
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Backend    string
	LogLevel   string
	LogFormat  string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fiches CLI.
func NewRootCommand(build BuildInfo) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "fiches",
		Short:   "Fiches - hotel group checklists",
		Long:    "Create, reorder, fill in and print the checklists used to prepare hotel group stays.",
		Version: build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Fiches\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		build.Version, build.BuildDate, build.GitCommit))

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the database file (default fiches.db)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend (bolt|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRenameCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewMoveCommand(opts))
	cmd.AddCommand(NewDragCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))

	return cmd
}
