package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karnotteam/finrep/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finrep",
		Short:   "Financial reporting and variance engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newQuoteCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newVarianceCommand())

	return rootCmd
}
