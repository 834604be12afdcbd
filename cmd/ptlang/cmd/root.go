// Package cmd implements the ptlang command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/ptlang"
)

// Exit codes.
const (
	exitOK     = 0
	exitSource = 1 // lexical or syntax error in the input
	exitUsage  = 2 // bad flags, unreadable files or config
)

// options holds the state shared by all subcommands.
type options struct {
	cfgFile string
	verbose bool

	cfg *ptlang.Config
	log *slog.Logger
}

// NewRootCmd builds the ptlang command tree. Input and output go through
// the command's In, Out and Err streams.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ptlang",
		Short: "Lexer and parser for the pt language",
		Long: `ptlang tokenizes and parses pt programs.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree (text, json or yaml)
  check    - report whether a program parses

A FILE argument of "-" or no argument reads standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+ptlang.ConfigEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output on stderr")

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and the logger.
func (o *options) setup(stderr io.Writer) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if o.cfgFile != "" {
		o.cfg, err = ptlang.LoadConfig(o.cfgFile)
	} else {
		o.cfg, err = ptlang.LoadConfigFromEnv()
	}
	if err != nil {
		return usageError{err}
	}
	o.log.Debug("config loaded", "file", o.cfgFile, "format", o.cfg.Format)
	return nil
}

// usageError marks failures that are not caused by the pt source itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCode maps an error returned by the command tree to a process status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var lexErr *ptlang.LexError
	var parseErr *ptlang.ParseError
	if errors.As(err, &lexErr) || errors.As(err, &parseErr) {
		return exitSource
	}
	return exitUsage
}

// Execute runs the command tree on the process arguments and returns the
// exit status.
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ptlang: %v\n", err)
	}
	return exitCode(err)
}
