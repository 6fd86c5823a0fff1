// Package commands wires the booking engine and the import pipeline into
// the simpleaccounting CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uzbekdev1/SimpleAccounting/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "simpleaccounting",
		Short:   "Double-entry bookkeeping with CSV bank import",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBookCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newAccountsCommand())

	return rootCmd
}
