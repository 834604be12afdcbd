package cmd

import (
	"bufio"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kolkov/ptlang"
)

func newParseCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Print the syntax tree",
		Long: `Parses a pt program and prints its syntax tree.

Examples:
  ptlang parse main.pt
  ptlang parse --format json main.pt
  ptlang parse - < main.pt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runParse(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml (default from config)")
	return cmd
}

func (o *options) runParse(cmd *cobra.Command, args []string, formatFlag string) error {
	format := o.cfg.Format
	if cmd.Flags().Changed("format") {
		f, err := ptlang.ParseFormat(formatFlag)
		if err != nil {
			return usageError{err}
		}
		format = f
	}

	prog, err := o.parse(cmd, args)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := prog.Encode(out, format); err != nil {
		return usageError{fmt.Errorf("write output: %w", err)}
	}
	return out.Flush()
}

// parse reads and parses the program named by args.
func (o *options) parse(cmd *cobra.Command, args []string) (*ptlang.Program, error) {
	name, src, err := o.readSource(cmd, args)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	prog, err := ptlang.ParseNamed(name, src)
	if err != nil {
		o.log.Debug("parse failed", "name", name, "error", err)
		return nil, err
	}
	o.log.Debug("parsed", "name", name, "items", prog.Len(), "elapsed", time.Since(start))
	return prog, nil
}
