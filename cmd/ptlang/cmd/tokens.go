package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/ptlang"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Print the token stream",
		Long: `Prints one token per line as LINE:COLUMN KIND "TEXT".

Examples:
  ptlang tokens main.pt
  echo 'x = 1;' | ptlang tokens`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTokens(cmd, args)
		},
	}
}

func (o *options) runTokens(cmd *cobra.Command, args []string) error {
	name, src, err := o.readSource(cmd, args)
	if err != nil {
		return err
	}

	toks, err := ptlang.TokenizeNamed(name, src)
	if err != nil {
		return err
	}
	o.log.Debug("tokenized", "name", name, "tokens", len(toks))

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, tok := range toks {
		fmt.Fprintln(out, tok)
	}
	return out.Flush()
}
