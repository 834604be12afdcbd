package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Report whether a program parses",
		Long: `Parses a pt program and prints a one-line summary.
The exit status is 1 when the program has a lexical or syntax error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}

			funcs := prog.Functions()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d items, %d functions", prog.Len(), len(funcs))
			if len(funcs) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", strings.Join(funcs, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
