package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/ptlang"
)

// Set at build time via -ldflags.
var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ptlang version",
		Args:  cobra.NoArgs,
		// Skips the root's config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ptlang version %s (commit %s, built %s)\n", ptlang.Version, commit, date)
		},
	}
}
